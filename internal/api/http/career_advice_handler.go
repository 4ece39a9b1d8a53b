package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/service"
)

type CareerAdviceHandler struct {
	adviceSvc service.CareerAdviceService
}

func NewCareerAdviceHandler(adviceSvc service.CareerAdviceService) *CareerAdviceHandler {
	return &CareerAdviceHandler{adviceSvc: adviceSvc}
}

type careerAdviceRequest struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Body      string `json:"body"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url"`
	Published bool   `json:"published"`
}

func (req careerAdviceRequest) toDomain() *domain.CareerAdvice {
	return &domain.CareerAdvice{
		Title:     req.Title,
		Summary:   req.Summary,
		Body:      req.Body,
		Category:  req.Category,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	}
}

func (h *CareerAdviceHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize, err := pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	items, total, err := h.adviceSvc.List(r.Context(), OptionalActor(r.Context()), r.URL.Query().Get("category"), page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.CareerAdvice]{Items: items, TotalCount: total, Page: page, PageSize: pageSize})
}

func (h *CareerAdviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.adviceSvc.Get(r.Context(), OptionalActor(r.Context()), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *CareerAdviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req careerAdviceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	a := req.toDomain()
	if err := h.adviceSvc.Create(r.Context(), actor, a); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *CareerAdviceHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req careerAdviceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	a, err := h.adviceSvc.Update(r.Context(), actor, mux.Vars(r)["slug"], req.toDomain())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *CareerAdviceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.adviceSvc.Delete(r.Context(), actor, mux.Vars(r)["slug"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

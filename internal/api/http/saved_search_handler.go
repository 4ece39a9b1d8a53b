package http

import (
	"net/http"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/service"
)

type SavedSearchHandler struct {
	searchSvc service.SavedSearchService
}

func NewSavedSearchHandler(searchSvc service.SavedSearchService) *SavedSearchHandler {
	return &SavedSearchHandler{searchSvc: searchSvc}
}

type savedSearchRequest struct {
	Name          string `json:"name"`
	Query         string `json:"query"`
	Location      string `json:"location"`
	RemoteOnly    bool   `json:"remote_only"`
	AlertsEnabled bool   `json:"alerts_enabled"`
}

func (req savedSearchRequest) toDomain() *domain.SavedSearch {
	return &domain.SavedSearch{
		Name:          req.Name,
		Query:         req.Query,
		Location:      req.Location,
		RemoteOnly:    req.RemoteOnly,
		AlertsEnabled: req.AlertsEnabled,
	}
}

func (h *SavedSearchHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	searches, err := h.searchSvc.List(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.SavedSearch]{Items: searches, TotalCount: int32(len(searches))})
}

func (h *SavedSearchHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req savedSearchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	search := req.toDomain()
	if err := h.searchSvc.Create(r.Context(), actor, search); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, search)
}

func (h *SavedSearchHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	search, err := h.searchSvc.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, search)
}

func (h *SavedSearchHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req savedSearchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	search := req.toDomain()
	search.ID = id
	if err := h.searchSvc.Update(r.Context(), actor, search); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, search)
}

func (h *SavedSearchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.searchSvc.Delete(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"net/http"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/service"
	"jobboard-backend/internal/utils"
)

type ApplicationHandler struct {
	appSvc service.ApplicationService
}

func NewApplicationHandler(appSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc}
}

type createApplicationRequest struct {
	JobID       int32  `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
	Notes       string `json:"notes"`
}

type updateApplicationRequest struct {
	CoverLetter string `json:"cover_letter"`
	Notes       string `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type bulkStatusRequest struct {
	Updates []updateStatusEntry `json:"updates"`
}

type updateStatusEntry struct {
	ApplicationID int32  `json:"application_id"`
	Status        string `json:"status"`
}

// bulkStatusFailure lists the changes that were saved before the batch failed.
type bulkStatusFailure struct {
	Error     string               `json:"error"`
	RequestID string               `json:"request_id,omitempty"`
	Applied   []domain.Application `json:"applied"`
}

type statusChangeResponse struct {
	Application  *domain.Application        `json:"application"`
	Notification *utils.SuppressionDecision `json:"notification,omitempty"`
}

// List returns the caller's applications, or a job's applications when job_id is given.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, pageSize, err := pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	jobID, err := queryInt32(r, "job_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	status := r.URL.Query().Get("status")
	if status != "" {
		parsed, err := domain.ParseApplicationStatus(status)
		if err != nil {
			writeError(w, r, err)
			return
		}
		status = string(parsed)
	}

	var (
		apps  []domain.Application
		total int32
	)
	if jobID > 0 {
		apps, total, err = h.appSvc.ListForJob(r.Context(), actor, jobID, status, page, pageSize)
	} else {
		apps, total, err = h.appSvc.ListMine(r.Context(), actor, status, page, pageSize)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Application]{Items: apps, TotalCount: total, Page: page, PageSize: pageSize})
}

func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req createApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	app, err := h.appSvc.Create(r.Context(), actor, req.JobID, req.CoverLetter, req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	app, err := h.appSvc.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var req updateApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	app, err := h.appSvc.Update(r.Context(), actor, id, req.CoverLetter, req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.appSvc.Delete(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateStatus changes the status and reports whether the applicant was emailed.
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	status, err := domain.ParseApplicationStatus(req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	app, decision, err := h.appSvc.UpdateStatus(r.Context(), actor, id, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusChangeResponse{Application: app, Notification: decision})
}

func (h *ApplicationHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := ActorFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req bulkStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	updates := make([]domain.StatusUpdate, 0, len(req.Updates))
	for _, u := range req.Updates {
		status, err := domain.ParseApplicationStatus(u.Status)
		if err != nil {
			writeError(w, r, err)
			return
		}
		updates = append(updates, domain.StatusUpdate{ApplicationID: u.ApplicationID, Status: status})
	}
	apps, err := h.appSvc.BulkUpdateStatus(r.Context(), actor, updates)
	if err != nil && len(apps) > 0 {
		logger.ErrorContext(r.Context(), "Bulk status change partly applied", "applied", len(apps), "error", err)
		writeJSON(w, http.StatusInternalServerError, bulkStatusFailure{
			Error:     "internal error",
			RequestID: logger.RequestID(r.Context()),
			Applied:   apps,
		})
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Application]{Items: apps, TotalCount: int32(len(apps))})
}

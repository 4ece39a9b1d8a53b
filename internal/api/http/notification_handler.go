package http

import (
	"net/http"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/service"
)

type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
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
	notes, total, err := h.noteSvc.GetNotifications(r.Context(), actor.UserID, page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Notification]{Items: notes, TotalCount: total, Page: page, PageSize: pageSize})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
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
	if err := h.noteSvc.MarkAsRead(r.Context(), actor.UserID, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

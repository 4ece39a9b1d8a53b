package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/logger"
)

var errUnauthenticated = errors.New("unauthenticated")

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type listResponse[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int32 `json:"total_count"`
	Page       int32 `json:"page,omitempty"`
	PageSize   int32 `json:"page_size,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// statusFor maps domain sentinels onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Error: msg, RequestID: logger.RequestID(r.Context())})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("malformed request body: %v: %w", err, domain.ErrInvalidInput)
	}
	return nil
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, domain.ErrInvalidInput)
	}
	return int32(id), nil
}

// queryInt32 returns 0 when the parameter is absent
func queryInt32(r *http.Request, name string) (int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, domain.ErrInvalidInput)
	}
	return int32(v), nil
}

func pageParams(r *http.Request) (int32, int32, error) {
	page, err := queryInt32(r, "page")
	if err != nil {
		return 0, 0, err
	}
	pageSize, err := queryInt32(r, "page_size")
	if err != nil {
		return 0, 0, err
	}
	return page, pageSize, nil
}

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"jobboard-backend/internal/ratelimit"
	"jobboard-backend/internal/security"
	"jobboard-backend/internal/service"
)

// Services bundles what the router needs to serve the API
type Services struct {
	Applications  service.ApplicationService
	SavedSearches service.SavedSearchService
	CareerAdvice  service.CareerAdviceService
	Notifications service.NotificationService
}

// HealthChecker is satisfied by *sql.DB
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// NewRouter registers every route by name; Auth looks the names up in
// config.EndpointSecurityConfig.
func NewRouter(svcs Services, tm security.TokenManager, limiter ratelimit.Limiter, trustedProxies []string, health HealthChecker) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID, Logging, Recovery, Auth(tm), RateLimit(limiter, trustedProxies))

	router.HandleFunc("/health", healthHandler(health)).Methods(http.MethodGet).Name("health")

	api := router.PathPrefix("/api/v1").Subrouter()

	apps := NewApplicationHandler(svcs.Applications)
	api.HandleFunc("/applications", apps.List).Methods(http.MethodGet).Name("applications.list")
	api.HandleFunc("/applications", apps.Create).Methods(http.MethodPost).Name("applications.create")
	api.HandleFunc("/applications/status:bulk", apps.BulkUpdateStatus).Methods(http.MethodPost).Name("applications.bulkStatus")
	api.HandleFunc("/applications/{id:[0-9]+}", apps.Get).Methods(http.MethodGet).Name("applications.get")
	api.HandleFunc("/applications/{id:[0-9]+}", apps.Update).Methods(http.MethodPut).Name("applications.update")
	api.HandleFunc("/applications/{id:[0-9]+}", apps.Delete).Methods(http.MethodDelete).Name("applications.delete")
	api.HandleFunc("/applications/{id:[0-9]+}/status", apps.UpdateStatus).Methods(http.MethodPatch).Name("applications.updateStatus")

	searches := NewSavedSearchHandler(svcs.SavedSearches)
	api.HandleFunc("/saved-searches", searches.List).Methods(http.MethodGet).Name("savedSearches.list")
	api.HandleFunc("/saved-searches", searches.Create).Methods(http.MethodPost).Name("savedSearches.create")
	api.HandleFunc("/saved-searches/{id:[0-9]+}", searches.Get).Methods(http.MethodGet).Name("savedSearches.get")
	api.HandleFunc("/saved-searches/{id:[0-9]+}", searches.Update).Methods(http.MethodPut).Name("savedSearches.update")
	api.HandleFunc("/saved-searches/{id:[0-9]+}", searches.Delete).Methods(http.MethodDelete).Name("savedSearches.delete")

	advice := NewCareerAdviceHandler(svcs.CareerAdvice)
	api.HandleFunc("/career-advice", advice.List).Methods(http.MethodGet).Name("careerAdvice.list")
	api.HandleFunc("/career-advice", advice.Create).Methods(http.MethodPost).Name("careerAdvice.create")
	api.HandleFunc("/career-advice/{slug}", advice.Get).Methods(http.MethodGet).Name("careerAdvice.get")
	api.HandleFunc("/career-advice/{slug}", advice.Update).Methods(http.MethodPut).Name("careerAdvice.update")
	api.HandleFunc("/career-advice/{slug}", advice.Delete).Methods(http.MethodDelete).Name("careerAdvice.delete")

	notes := NewNotificationHandler(svcs.Notifications)
	api.HandleFunc("/notifications", notes.List).Methods(http.MethodGet).Name("notifications.list")
	api.HandleFunc("/notifications/{id:[0-9]+}/read", notes.MarkRead).Methods(http.MethodPost).Name("notifications.markRead")

	return router
}

func healthHandler(health HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := health.PingContext(ctx); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": err.Error()})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

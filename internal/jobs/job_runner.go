package jobs

import (
	"jobboard-backend/internal/config"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/repository"
	"jobboard-backend/internal/repository/postgres"
	"jobboard-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	repos    Repositories
	services *Services
	config   *config.Config
	now      service.Clock
}

// Repositories holds the data access the jobs need
type Repositories struct {
	SavedSearches repository.SavedSearchRepository
	Jobs          repository.JobRepository
	Users         repository.UserRepository
	Notifications repository.NotificationRepository
}

// RepositoriesFromStore picks the job repositories out of a postgres store
func RepositoriesFromStore(store *postgres.Store) Repositories {
	return Repositories{
		SavedSearches: store.SavedSearchRepository,
		Jobs:          store.JobRepository,
		Users:         store.UserRepository,
		Notifications: store.NotificationRepository,
	}
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Email service.EmailService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(repos Repositories, services *Services, cfg *config.Config, now service.Clock) *JobRunner {
	if now == nil {
		now = service.SystemClock
	}
	return &JobRunner{
		repos:    repos,
		services: services,
		config:   cfg,
		now:      now,
	}
}

// Config returns the configuration the runner was built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every scheduled job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.SendSavedSearchAlerts()
	jr.PurgeReadNotifications()
}

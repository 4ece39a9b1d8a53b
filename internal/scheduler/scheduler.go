package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// UTC with seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	registered := 0
	for _, job := range []struct {
		name string
		spec string
		fn   func()
	}{
		{"SendSavedSearchAlerts", cfg.SendSavedSearchAlerts, s.jobs.SendSavedSearchAlerts},
		{"PurgeReadNotifications", cfg.PurgeReadNotifications, s.jobs.PurgeReadNotifications},
	} {
		if _, err := s.cron.AddFunc(job.spec, job.fn); err != nil {
			logger.Error("Failed to register job", "job", job.name, "schedule", job.spec, "error", err)
			continue
		}
		registered++
	}

	logger.Info("Cron jobs registered", "count", registered)
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if any jobs are registered
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}

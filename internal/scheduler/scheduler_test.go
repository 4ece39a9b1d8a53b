package scheduler

import (
	"testing"
	"time"

	"jobboard-backend/internal/config"
	"jobboard-backend/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner(cfg *config.Config) *jobs.JobRunner {
	return jobs.NewJobRunner(jobs.Repositories{}, &jobs.Services{}, cfg, func() time.Time {
		return time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	})
}

func TestNewScheduler_RegistersJobs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Scheduler.SendSavedSearchAlerts = "0 0 7 * * *"
	cfg.Scheduler.PurgeReadNotifications = "0 30 3 * * *"

	s := NewScheduler(newRunner(cfg))
	require.Len(t, s.cron.Entries(), 2)
	assert.True(t, s.IsRunning())

	from := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	next := []time.Time{
		s.cron.Entries()[0].Schedule.Next(from),
		s.cron.Entries()[1].Schedule.Next(from),
	}
	assert.Contains(t, next, time.Date(2026, 5, 4, 7, 0, 0, 0, time.UTC))
	assert.Contains(t, next, time.Date(2026, 5, 4, 3, 30, 0, 0, time.UTC))
}

func TestNewScheduler_SkipsInvalidSchedule(t *testing.T) {
	cfg := &config.Config{}
	cfg.Scheduler.SendSavedSearchAlerts = "not a cron line"
	cfg.Scheduler.PurgeReadNotifications = "0 30 3 * * *"

	s := NewScheduler(newRunner(cfg))
	assert.Len(t, s.cron.Entries(), 1)
}

func TestScheduler_StartStop(t *testing.T) {
	cfg := &config.Config{}
	cfg.Scheduler.SendSavedSearchAlerts = "0 0 7 * * *"
	cfg.Scheduler.PurgeReadNotifications = "0 30 3 * * *"

	s := NewScheduler(newRunner(cfg))
	s.Start()
	s.Stop()
}

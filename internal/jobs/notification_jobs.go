package jobs

import (
	"context"
	"fmt"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/logger"
)

// SendSavedSearchAlerts emails each alert-enabled saved search a digest of the
// jobs posted since its last alert.
func (jr *JobRunner) SendSavedSearchAlerts() {
	jr.runWithRecovery("SendSavedSearchAlerts", func() {
		sent, err := jr.sendSavedSearchAlerts(context.Background())
		if err != nil {
			logger.Error("Failed to send saved search alerts", "error", err)
			return
		}
		logger.Info("Saved search alerts sent", "count", sent)
	})
}

func (jr *JobRunner) sendSavedSearchAlerts(ctx context.Context) (int, error) {
	searches, err := jr.repos.SavedSearches.ListAlertable(ctx)
	if err != nil {
		return 0, fmt.Errorf("list alertable searches: %w", err)
	}

	cfg := jr.config.Notification
	now := jr.now()
	defaultSince := now.Add(-time.Duration(cfg.AlertLookbackHours) * time.Hour)

	sent := 0
	for _, search := range searches {
		since := defaultSince
		if search.LastAlertedAt != nil {
			since = *search.LastAlertedAt
		}

		matches, err := jr.repos.Jobs.ListCreatedSince(ctx, since, search.Query, search.Location, search.RemoteOnly, int32(cfg.AlertMaxJobsPerMail))
		if err != nil {
			logger.Error("Failed to match jobs for saved search", "saved_search_id", search.ID, "error", err)
			continue
		}
		if len(matches) == 0 {
			logger.Debug("No new jobs for saved search", "saved_search_id", search.ID)
			continue
		}

		user, err := jr.repos.Users.GetByID(ctx, search.UserID)
		if err != nil {
			logger.Error("Failed to load saved search owner", "saved_search_id", search.ID, "user_id", search.UserID, "error", err)
			continue
		}

		if err := jr.services.Email.SendSavedSearchAlert(ctx, user.Email, user.Name, search.Name, matches); err != nil {
			logger.Error("Failed to send saved search alert",
				"saved_search_id", search.ID,
				"user_id", search.UserID,
				"error", err)
			continue
		}

		note := &domain.Notification{
			UserID:  search.UserID,
			Title:   "New jobs for " + search.Name,
			Message: fmt.Sprintf("%d new jobs match your saved search %q", len(matches), search.Name),
			Attributes: map[string]string{
				"type":            domain.NotificationTypeSavedSearchHit,
				"saved_search_id": fmt.Sprintf("%d", search.ID),
			},
		}
		if err := jr.repos.Notifications.Create(ctx, note); err != nil {
			logger.Warn("Failed to create saved search notification", "saved_search_id", search.ID, "error", err)
		}

		// matches come oldest first; a full page leaves the cursor on the last
		// job sent so the remainder goes out next run
		alertedAt := now
		if len(matches) >= cfg.AlertMaxJobsPerMail {
			alertedAt = matches[len(matches)-1].CreatedOn
		}
		// a failed mark only means the same jobs are offered again next run
		if err := jr.repos.SavedSearches.MarkAlerted(ctx, search.ID, alertedAt); err != nil {
			logger.Error("Failed to mark saved search alerted", "saved_search_id", search.ID, "error", err)
			continue
		}

		sent++
		logger.Debug("Sent saved search alert", "saved_search_id", search.ID, "jobs", len(matches))
	}
	return sent, nil
}

// PurgeReadNotifications deletes read in-app notifications past the retention period
func (jr *JobRunner) PurgeReadNotifications() {
	jr.runWithRecovery("PurgeReadNotifications", func() {
		deleted, err := jr.purgeReadNotifications(context.Background())
		if err != nil {
			logger.Error("Failed to purge read notifications", "error", err)
			return
		}
		logger.Info("Purged read notifications", "count", deleted)
	})
}

func (jr *JobRunner) purgeReadNotifications(ctx context.Context) (int64, error) {
	days := jr.config.Notification.PurgeReadAfterDays
	cutoff := jr.now().AddDate(0, 0, -days)
	return jr.repos.Notifications.DeleteReadOlderThan(ctx, cutoff)
}

package domain

import "time"

// SavedSearch is a stored job query. When AlertsEnabled is set the cron runner
// emails new matches posted since LastAlertedAt.
type SavedSearch struct {
	ID            int32      `json:"id"`
	UserID        int32      `json:"user_id"`
	Name          string     `json:"name"`
	Query         string     `json:"query"`
	Location      string     `json:"location"`
	RemoteOnly    bool       `json:"remote_only"`
	AlertsEnabled bool       `json:"alerts_enabled"`
	LastAlertedAt *time.Time `json:"last_alerted_at,omitempty"`
	CreatedOn     time.Time  `json:"created_on"`
	UpdatedOn     time.Time  `json:"updated_on"`
}

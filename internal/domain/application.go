package domain

import (
	"fmt"
	"strings"
	"time"
)

// ApplicationStatus values must match the status column of the applications table.
type ApplicationStatus string

const (
	ApplicationStatusApplied      ApplicationStatus = "applied"
	ApplicationStatusViewed       ApplicationStatus = "viewed"
	ApplicationStatusContacted    ApplicationStatus = "contacted"
	ApplicationStatusInterviewing ApplicationStatus = "interviewing"
	ApplicationStatusOffered      ApplicationStatus = "offered"
	ApplicationStatusHired        ApplicationStatus = "hired"
	ApplicationStatusAccepted     ApplicationStatus = "accepted"
	ApplicationStatusRejected     ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn    ApplicationStatus = "withdrawn"
)

// ApplicationStatuses lists every known status in pipeline order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusViewed,
	ApplicationStatusContacted,
	ApplicationStatusInterviewing,
	ApplicationStatusOffered,
	ApplicationStatusHired,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
	ApplicationStatusWithdrawn,
}

// ParseApplicationStatus normalises raw input and rejects values outside the known set.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(strings.ToLower(strings.TrimSpace(s)))
	if st.IsValid() {
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown application status %q", ErrInvalidInput, s)
}

func (s ApplicationStatus) IsValid() bool {
	for _, known := range ApplicationStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Application struct {
	ID          int32             `json:"id"`
	UserID      int32             `json:"user_id"`
	JobID       int32             `json:"job_id"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"cover_letter"`
	Notes       string            `json:"notes"`
	// Notification bookkeeping, written only after a status email goes out.
	LastStatusNotified    *ApplicationStatus `json:"last_status_notified,omitempty"`
	LastStatusEmailSentAt *time.Time         `json:"last_status_email_sent_at,omitempty"`
	CreatedOn             time.Time          `json:"created_on"`
	UpdatedOn             time.Time          `json:"updated_on"`
}

// StatusUpdate is one entry of a bulk status change request.
type StatusUpdate struct {
	ApplicationID int32             `json:"application_id"`
	Status        ApplicationStatus `json:"status"`
}

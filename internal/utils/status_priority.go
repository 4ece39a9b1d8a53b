package utils

import (
	"fmt"
	"math"
	"time"

	"jobboard-backend/internal/domain"
)

// StatusEmailSuppressionWindow is how long after a status email further
// status emails for the same application may be withheld.
const StatusEmailSuppressionWindow = 30 * time.Minute

// statusPriority ranks the statuses worth an email. Statuses missing from the
// table rank 0 and never trigger one.
var statusPriority = map[domain.ApplicationStatus]int{
	domain.ApplicationStatusOffered:      4,
	domain.ApplicationStatusInterviewing: 3,
	domain.ApplicationStatusContacted:    2,
	domain.ApplicationStatusRejected:     1,
}

// SuppressionDecision is the advice returned by ShouldSuppressStatusEmail.
// HigherPriorityStatus is set only when the current status outranks the last
// notified one inside the window; the caller should record it as the new
// notified status once the email is sent.
type SuppressionDecision struct {
	ShouldSuppress       bool                      `json:"should_suppress"`
	Reason               string                    `json:"reason,omitempty"`
	HigherPriorityStatus *domain.ApplicationStatus `json:"higher_priority_status,omitempty"`
}

// GetStatusPriority returns the notification priority of status, 0 for
// statuses that do not notify or are unknown.
func GetStatusPriority(status domain.ApplicationStatus) int {
	return statusPriority[status]
}

// GetHigherPriorityStatus returns whichever status ranks higher. On a tie the
// first argument wins.
func GetHigherPriorityStatus(a, b domain.ApplicationStatus) domain.ApplicationStatus {
	if GetStatusPriority(b) > GetStatusPriority(a) {
		return b
	}
	return a
}

// ShouldNotifyStatus reports whether a change to status deserves an email at all.
func ShouldNotifyStatus(status domain.ApplicationStatus) bool {
	return GetStatusPriority(status) > 0
}

// ShouldSuppressStatusEmail decides whether a status email for current should be
// withheld, given when the last one was sent and which status it announced.
// It has no side effects.
func ShouldSuppressStatusEmail(now time.Time, lastSentAt *time.Time, current domain.ApplicationStatus, lastNotified *domain.ApplicationStatus) SuppressionDecision {
	if lastSentAt == nil {
		return SuppressionDecision{ShouldSuppress: false}
	}

	elapsed := now.Sub(*lastSentAt)
	if elapsed >= StatusEmailSuppressionWindow {
		return SuppressionDecision{ShouldSuppress: false}
	}
	minutes := int(math.Round(elapsed.Minutes()))

	if lastNotified == nil {
		return SuppressionDecision{
			ShouldSuppress: true,
			Reason:         fmt.Sprintf("status email sent %d minutes ago and the previously notified status is unknown", minutes),
		}
	}

	if GetStatusPriority(current) > GetStatusPriority(*lastNotified) {
		higher := current
		return SuppressionDecision{ShouldSuppress: false, HigherPriorityStatus: &higher}
	}

	return SuppressionDecision{
		ShouldSuppress: true,
		Reason: fmt.Sprintf("status %q does not outrank last notified status %q, status email sent %d minutes ago",
			current, *lastNotified, minutes),
	}
}

package utils

import (
	"testing"
	"time"

	"jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPtr(s domain.ApplicationStatus) *domain.ApplicationStatus {
	return &s
}

func TestGetStatusPriority(t *testing.T) {
	tests := []struct {
		status   domain.ApplicationStatus
		expected int
	}{
		{domain.ApplicationStatusOffered, 4},
		{domain.ApplicationStatusInterviewing, 3},
		{domain.ApplicationStatusContacted, 2},
		{domain.ApplicationStatusRejected, 1},
		{domain.ApplicationStatusApplied, 0},
		{domain.ApplicationStatusViewed, 0},
		{domain.ApplicationStatusHired, 0},
		{domain.ApplicationStatusAccepted, 0},
		{domain.ApplicationStatusWithdrawn, 0},
		{domain.ApplicationStatus("ghosted"), 0},
		{domain.ApplicationStatus(""), 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetStatusPriority(tt.status))
		})
	}
}

func TestGetHigherPriorityStatus(t *testing.T) {
	t.Run("Second argument outranks", func(t *testing.T) {
		got := GetHigherPriorityStatus(domain.ApplicationStatusContacted, domain.ApplicationStatusOffered)
		assert.Equal(t, domain.ApplicationStatusOffered, got)
	})

	t.Run("First argument outranks", func(t *testing.T) {
		got := GetHigherPriorityStatus(domain.ApplicationStatusInterviewing, domain.ApplicationStatusRejected)
		assert.Equal(t, domain.ApplicationStatusInterviewing, got)
	})

	t.Run("Tie keeps first argument", func(t *testing.T) {
		got := GetHigherPriorityStatus(domain.ApplicationStatusHired, domain.ApplicationStatusApplied)
		assert.Equal(t, domain.ApplicationStatusHired, got)

		got = GetHigherPriorityStatus(domain.ApplicationStatusApplied, domain.ApplicationStatusHired)
		assert.Equal(t, domain.ApplicationStatusApplied, got)
	})
}

func TestShouldNotifyStatus(t *testing.T) {
	assert.True(t, ShouldNotifyStatus(domain.ApplicationStatusOffered))
	assert.True(t, ShouldNotifyStatus(domain.ApplicationStatusRejected))
	assert.False(t, ShouldNotifyStatus(domain.ApplicationStatusApplied))
	assert.False(t, ShouldNotifyStatus(domain.ApplicationStatusWithdrawn))
	assert.False(t, ShouldNotifyStatus(domain.ApplicationStatus("unknown")))
}

func TestShouldSuppressStatusEmail(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	sentAt := func(ago time.Duration) *time.Time {
		ts := now.Add(-ago)
		return &ts
	}

	t.Run("No previous email", func(t *testing.T) {
		d := ShouldSuppressStatusEmail(now, nil, domain.ApplicationStatusContacted, statusPtr(domain.ApplicationStatusOffered))
		assert.Equal(t, SuppressionDecision{ShouldSuppress: false}, d)
	})

	t.Run("Outside window", func(t *testing.T) {
		d := ShouldSuppressStatusEmail(now, sentAt(31*time.Minute), domain.ApplicationStatusContacted, statusPtr(domain.ApplicationStatusOffered))
		assert.False(t, d.ShouldSuppress)
		assert.Empty(t, d.Reason)
		assert.Nil(t, d.HigherPriorityStatus)
	})

	t.Run("Exactly at window boundary", func(t *testing.T) {
		d := ShouldSuppressStatusEmail(now, sentAt(30*time.Minute), domain.ApplicationStatusContacted, statusPtr(domain.ApplicationStatusOffered))
		assert.False(t, d.ShouldSuppress)
	})

	t.Run("Just inside window", func(t *testing.T) {
		d := ShouldSuppressStatusEmail(now, sentAt(30*time.Minute-time.Second), domain.ApplicationStatusContacted, statusPtr(domain.ApplicationStatusOffered))
		assert.True(t, d.ShouldSuppress)
		assert.Contains(t, d.Reason, "30 minutes")
	})

	t.Run("Higher priority inside window", func(t *testing.T) {
		d := ShouldSuppressStatusEmail(now, sentAt(10*time.Minute), domain.ApplicationStatusInterviewing, statusPtr(domain.ApplicationStatusContacted))
		assert.False(t, d.ShouldSuppress)
		require.NotNil(t, d.HigherPriorityStatus)
		assert.Equal(t, domain.ApplicationStatusInterviewing, *d.HigherPriorityStatus)
	})

	t.Run("Lower priority inside window", func(t *testing.T) {
		d := ShouldSuppressStatusEmail(now, sentAt(10*time.Minute), domain.ApplicationStatusContacted, statusPtr(domain.ApplicationStatusInterviewing))
		assert.True(t, d.ShouldSuppress)
		assert.Nil(t, d.HigherPriorityStatus)
		assert.Contains(t, d.Reason, "contacted")
		assert.Contains(t, d.Reason, "interviewing")
		assert.Contains(t, d.Reason, "10 minute")
	})

	t.Run("Equal priority inside window", func(t *testing.T) {
		d := ShouldSuppressStatusEmail(now, sentAt(5*time.Minute), domain.ApplicationStatusOffered, statusPtr(domain.ApplicationStatusOffered))
		assert.True(t, d.ShouldSuppress)
	})

	t.Run("Unknown previous status inside window", func(t *testing.T) {
		d := ShouldSuppressStatusEmail(now, sentAt(10*time.Minute), domain.ApplicationStatusOffered, nil)
		assert.True(t, d.ShouldSuppress)
		assert.Nil(t, d.HigherPriorityStatus)
		assert.Contains(t, d.Reason, "10 minute")
	})

	t.Run("Elapsed minutes are rounded", func(t *testing.T) {
		d := ShouldSuppressStatusEmail(now, sentAt(12*time.Minute+40*time.Second), domain.ApplicationStatusApplied, statusPtr(domain.ApplicationStatusRejected))
		assert.True(t, d.ShouldSuppress)
		assert.Contains(t, d.Reason, "13 minutes")
	})

	t.Run("Send time in the future counts as inside the window", func(t *testing.T) {
		d := ShouldSuppressStatusEmail(now, sentAt(-2*time.Minute), domain.ApplicationStatusContacted, statusPtr(domain.ApplicationStatusOffered))
		assert.True(t, d.ShouldSuppress)
	})
}

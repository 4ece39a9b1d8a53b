package service

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/utils"
)

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

// SystemClock is the production Clock
func SystemClock() time.Time {
	return time.Now().UTC()
}

type ApplicationService interface {
	Create(ctx context.Context, actor domain.Actor, jobID int32, coverLetter, notes string) (*domain.Application, error)
	Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Application, error)
	ListMine(ctx context.Context, actor domain.Actor, status string, page, pageSize int32) ([]domain.Application, int32, error)
	ListForJob(ctx context.Context, actor domain.Actor, jobID int32, status string, page, pageSize int32) ([]domain.Application, int32, error)
	Update(ctx context.Context, actor domain.Actor, id int32, coverLetter, notes string) (*domain.Application, error)
	Delete(ctx context.Context, actor domain.Actor, id int32) error
	UpdateStatus(ctx context.Context, actor domain.Actor, id int32, status domain.ApplicationStatus) (*domain.Application, *utils.SuppressionDecision, error)
	BulkUpdateStatus(ctx context.Context, actor domain.Actor, updates []domain.StatusUpdate) ([]domain.Application, error)
}

type StatusNotificationService interface {
	// NotifyStatusChange announces app's current status to the applicant and
	// returns the suppression advice that was applied.
	NotifyStatusChange(ctx context.Context, app *domain.Application) (*utils.SuppressionDecision, error)
}

type SavedSearchService interface {
	Create(ctx context.Context, actor domain.Actor, s *domain.SavedSearch) error
	Get(ctx context.Context, actor domain.Actor, id int32) (*domain.SavedSearch, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.SavedSearch, error)
	Update(ctx context.Context, actor domain.Actor, s *domain.SavedSearch) error
	Delete(ctx context.Context, actor domain.Actor, id int32) error
}

type CareerAdviceService interface {
	List(ctx context.Context, actor *domain.Actor, category string, page, pageSize int32) ([]domain.CareerAdvice, int32, error)
	Get(ctx context.Context, actor *domain.Actor, slug string) (*domain.CareerAdvice, error)
	Create(ctx context.Context, actor domain.Actor, a *domain.CareerAdvice) error
	Update(ctx context.Context, actor domain.Actor, slug string, a *domain.CareerAdvice) (*domain.CareerAdvice, error)
	Delete(ctx context.Context, actor domain.Actor, slug string) error
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendStatusChangeNotification(ctx context.Context, email, name, jobTitle, company string, status domain.ApplicationStatus) error
	SendSavedSearchAlert(ctx context.Context, email, name, searchName string, jobs []domain.Job) error
}

// normalizePage clamps paging input the same way for every list endpoint
func normalizePage(page, pageSize int32) (int32, int32) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

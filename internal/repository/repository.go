package repository

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
}

type JobRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Job, error)
	// ListCreatedSince returns jobs posted after since that match the saved-search criteria, oldest first
	ListCreatedSince(ctx context.Context, since time.Time, query, location string, remoteOnly bool, limit int32) ([]domain.Job, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int32) (*domain.Application, error)
	GetByUserAndJob(ctx context.Context, userID, jobID int32) (*domain.Application, error)
	Update(ctx context.Context, app *domain.Application) error
	UpdateStatus(ctx context.Context, id int32, status domain.ApplicationStatus) error
	Delete(ctx context.Context, id int32) error
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Application, int32, error)
	ListByJob(ctx context.Context, jobID int32, status string, page, pageSize int32) ([]domain.Application, int32, error)
	// MarkStatusNotified records the status announced by the email sent at sentAt
	MarkStatusNotified(ctx context.Context, id int32, status domain.ApplicationStatus, sentAt time.Time) error
}

type SavedSearchRepository interface {
	Create(ctx context.Context, s *domain.SavedSearch) error
	GetByID(ctx context.Context, id int32) (*domain.SavedSearch, error)
	Update(ctx context.Context, s *domain.SavedSearch) error
	Delete(ctx context.Context, id int32) error
	ListByUser(ctx context.Context, userID int32) ([]domain.SavedSearch, error)
	ListAlertable(ctx context.Context) ([]domain.SavedSearch, error)
	MarkAlerted(ctx context.Context, id int32, at time.Time) error
}

type CareerAdviceRepository interface {
	Create(ctx context.Context, a *domain.CareerAdvice) error
	GetBySlug(ctx context.Context, slug string) (*domain.CareerAdvice, error)
	Update(ctx context.Context, a *domain.CareerAdvice) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, category string, includeDrafts bool, page, pageSize int32) ([]domain.CareerAdvice, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

package service_test

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/utils"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockJobRepo
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int32) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) ListCreatedSince(ctx context.Context, since time.Time, query, location string, remoteOnly bool, limit int32) ([]domain.Job, error) {
	args := m.Called(ctx, since, query, location, remoteOnly, limit)
	return args.Get(0).([]domain.Job), args.Error(1)
}

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByUserAndJob(ctx context.Context, userID, jobID int32) (*domain.Application, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int32, status domain.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockApplicationRepo) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Application), args.Get(1).(int32), args.Error(2)
}
func (m *MockApplicationRepo) ListByJob(ctx context.Context, jobID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	args := m.Called(ctx, jobID, status, page, pageSize)
	return args.Get(0).([]domain.Application), args.Get(1).(int32), args.Error(2)
}
func (m *MockApplicationRepo) MarkStatusNotified(ctx context.Context, id int32, status domain.ApplicationStatus, sentAt time.Time) error {
	args := m.Called(ctx, id, status, sentAt)
	return args.Error(0)
}

// MockSavedSearchRepo
type MockSavedSearchRepo struct {
	mock.Mock
}

func (m *MockSavedSearchRepo) Create(ctx context.Context, s *domain.SavedSearch) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSavedSearchRepo) GetByID(ctx context.Context, id int32) (*domain.SavedSearch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedSearch), args.Error(1)
}
func (m *MockSavedSearchRepo) Update(ctx context.Context, s *domain.SavedSearch) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSavedSearchRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSavedSearchRepo) ListByUser(ctx context.Context, userID int32) ([]domain.SavedSearch, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.SavedSearch), args.Error(1)
}
func (m *MockSavedSearchRepo) ListAlertable(ctx context.Context) ([]domain.SavedSearch, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SavedSearch), args.Error(1)
}
func (m *MockSavedSearchRepo) MarkAlerted(ctx context.Context, id int32, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockCareerAdviceRepo
type MockCareerAdviceRepo struct {
	mock.Mock
}

func (m *MockCareerAdviceRepo) Create(ctx context.Context, a *domain.CareerAdvice) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockCareerAdviceRepo) GetBySlug(ctx context.Context, slug string) (*domain.CareerAdvice, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CareerAdvice), args.Error(1)
}
func (m *MockCareerAdviceRepo) Update(ctx context.Context, a *domain.CareerAdvice) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockCareerAdviceRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCareerAdviceRepo) List(ctx context.Context, category string, includeDrafts bool, page, pageSize int32) ([]domain.CareerAdvice, int32, error) {
	args := m.Called(ctx, category, includeDrafts, page, pageSize)
	return args.Get(0).([]domain.CareerAdvice), args.Get(1).(int32), args.Error(2)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
func (m *MockNotificationRepo) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendStatusChangeNotification(ctx context.Context, email, name, jobTitle, company string, status domain.ApplicationStatus) error {
	args := m.Called(ctx, email, name, jobTitle, company, status)
	return args.Error(0)
}
func (m *MockEmailService) SendSavedSearchAlert(ctx context.Context, email, name, searchName string, jobs []domain.Job) error {
	args := m.Called(ctx, email, name, searchName, jobs)
	return args.Error(0)
}

// MockStatusNotifier
type MockStatusNotifier struct {
	mock.Mock
}

func (m *MockStatusNotifier) NotifyStatusChange(ctx context.Context, app *domain.Application) (*utils.SuppressionDecision, error) {
	args := m.Called(ctx, app)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utils.SuppressionDecision), args.Error(1)
}

// fixedClock returns a Clock whose time the test can move
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

func (c *fixedClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

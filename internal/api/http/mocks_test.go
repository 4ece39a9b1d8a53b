package http

import (
	"context"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/utils"

	"github.com/stretchr/testify/mock"
)

type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Create(ctx context.Context, actor domain.Actor, jobID int32, coverLetter, notes string) (*domain.Application, error) {
	args := m.Called(ctx, actor, jobID, coverLetter, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Application, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) ListMine(ctx context.Context, actor domain.Actor, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	args := m.Called(ctx, actor, status, page, pageSize)
	return args.Get(0).([]domain.Application), args.Get(1).(int32), args.Error(2)
}
func (m *MockApplicationService) ListForJob(ctx context.Context, actor domain.Actor, jobID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	args := m.Called(ctx, actor, jobID, status, page, pageSize)
	return args.Get(0).([]domain.Application), args.Get(1).(int32), args.Error(2)
}
func (m *MockApplicationService) Update(ctx context.Context, actor domain.Actor, id int32, coverLetter, notes string) (*domain.Application, error) {
	args := m.Called(ctx, actor, id, coverLetter, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationService) Delete(ctx context.Context, actor domain.Actor, id int32) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}
func (m *MockApplicationService) UpdateStatus(ctx context.Context, actor domain.Actor, id int32, status domain.ApplicationStatus) (*domain.Application, *utils.SuppressionDecision, error) {
	args := m.Called(ctx, actor, id, status)
	var app *domain.Application
	if a := args.Get(0); a != nil {
		app = a.(*domain.Application)
	}
	var decision *utils.SuppressionDecision
	if d := args.Get(1); d != nil {
		decision = d.(*utils.SuppressionDecision)
	}
	return app, decision, args.Error(2)
}
func (m *MockApplicationService) BulkUpdateStatus(ctx context.Context, actor domain.Actor, updates []domain.StatusUpdate) ([]domain.Application, error) {
	args := m.Called(ctx, actor, updates)
	return args.Get(0).([]domain.Application), args.Error(1)
}

type MockSavedSearchService struct {
	mock.Mock
}

func (m *MockSavedSearchService) Create(ctx context.Context, actor domain.Actor, s *domain.SavedSearch) error {
	args := m.Called(ctx, actor, s)
	return args.Error(0)
}
func (m *MockSavedSearchService) Get(ctx context.Context, actor domain.Actor, id int32) (*domain.SavedSearch, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedSearch), args.Error(1)
}
func (m *MockSavedSearchService) List(ctx context.Context, actor domain.Actor) ([]domain.SavedSearch, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.SavedSearch), args.Error(1)
}
func (m *MockSavedSearchService) Update(ctx context.Context, actor domain.Actor, s *domain.SavedSearch) error {
	args := m.Called(ctx, actor, s)
	return args.Error(0)
}
func (m *MockSavedSearchService) Delete(ctx context.Context, actor domain.Actor, id int32) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

type MockCareerAdviceService struct {
	mock.Mock
}

func (m *MockCareerAdviceService) List(ctx context.Context, actor *domain.Actor, category string, page, pageSize int32) ([]domain.CareerAdvice, int32, error) {
	args := m.Called(ctx, actor, category, page, pageSize)
	return args.Get(0).([]domain.CareerAdvice), args.Get(1).(int32), args.Error(2)
}
func (m *MockCareerAdviceService) Get(ctx context.Context, actor *domain.Actor, slug string) (*domain.CareerAdvice, error) {
	args := m.Called(ctx, actor, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CareerAdvice), args.Error(1)
}
func (m *MockCareerAdviceService) Create(ctx context.Context, actor domain.Actor, a *domain.CareerAdvice) error {
	args := m.Called(ctx, actor, a)
	return args.Error(0)
}
func (m *MockCareerAdviceService) Update(ctx context.Context, actor domain.Actor, slug string, a *domain.CareerAdvice) (*domain.CareerAdvice, error) {
	args := m.Called(ctx, actor, slug, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CareerAdvice), args.Error(1)
}
func (m *MockCareerAdviceService) Delete(ctx context.Context, actor domain.Actor, slug string) error {
	args := m.Called(ctx, actor, slug)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

// countingLimiter allows the first n requests per key
type countingLimiter struct {
	n    int
	seen map[string]int
}

func (l *countingLimiter) Allow(_ context.Context, key string) bool {
	if l.seen == nil {
		l.seen = map[string]int{}
	}
	l.seen[key]++
	return l.seen[key] <= l.n
}

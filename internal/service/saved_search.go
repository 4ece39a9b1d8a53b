package service

import (
	"context"
	"fmt"
	"strings"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository"
)

type savedSearchService struct {
	repo repository.SavedSearchRepository
}

func NewSavedSearchService(repo repository.SavedSearchRepository) SavedSearchService {
	return &savedSearchService{repo: repo}
}

func validateSavedSearch(s *domain.SavedSearch) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Query = strings.TrimSpace(s.Query)
	s.Location = strings.TrimSpace(s.Location)
	if s.Name == "" {
		return fmt.Errorf("saved search name is required: %w", domain.ErrInvalidInput)
	}
	if len(s.Name) > 120 {
		return fmt.Errorf("saved search name is too long: %w", domain.ErrInvalidInput)
	}
	return nil
}

func (s *savedSearchService) Create(ctx context.Context, actor domain.Actor, search *domain.SavedSearch) error {
	if err := validateSavedSearch(search); err != nil {
		return err
	}
	search.UserID = actor.UserID
	return s.repo.Create(ctx, search)
}

func (s *savedSearchService) Get(ctx context.Context, actor domain.Actor, id int32) (*domain.SavedSearch, error) {
	search, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if search.UserID != actor.UserID {
		// Other users' searches are reported as missing rather than forbidden.
		return nil, fmt.Errorf("saved search %d: %w", id, domain.ErrNotFound)
	}
	return search, nil
}

func (s *savedSearchService) List(ctx context.Context, actor domain.Actor) ([]domain.SavedSearch, error) {
	return s.repo.ListByUser(ctx, actor.UserID)
}

func (s *savedSearchService) Update(ctx context.Context, actor domain.Actor, search *domain.SavedSearch) error {
	existing, err := s.Get(ctx, actor, search.ID)
	if err != nil {
		return err
	}
	if err := validateSavedSearch(search); err != nil {
		return err
	}
	search.UserID = existing.UserID
	search.LastAlertedAt = existing.LastAlertedAt
	search.CreatedOn = existing.CreatedOn
	return s.repo.Update(ctx, search)
}

func (s *savedSearchService) Delete(ctx context.Context, actor domain.Actor, id int32) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository"
)

type careerAdviceService struct {
	repo repository.CareerAdviceRepository
	now  Clock
}

func NewCareerAdviceService(repo repository.CareerAdviceRepository, now Clock) CareerAdviceService {
	return &careerAdviceService{repo: repo, now: now}
}

// Slugify lowercases title and joins its alphanumeric runs with dashes
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func (s *careerAdviceService) List(ctx context.Context, actor *domain.Actor, category string, page, pageSize int32) ([]domain.CareerAdvice, int32, error) {
	page, pageSize = normalizePage(page, pageSize)
	includeDrafts := actor != nil && actor.IsAdmin()
	return s.repo.List(ctx, strings.TrimSpace(category), includeDrafts, page, pageSize)
}

func (s *careerAdviceService) Get(ctx context.Context, actor *domain.Actor, slug string) (*domain.CareerAdvice, error) {
	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !a.Published && (actor == nil || !actor.IsAdmin()) {
		return nil, fmt.Errorf("career advice %q: %w", slug, domain.ErrNotFound)
	}
	return a, nil
}

func (s *careerAdviceService) Create(ctx context.Context, actor domain.Actor, a *domain.CareerAdvice) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("only admins can publish career advice: %w", domain.ErrForbidden)
	}
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" || strings.TrimSpace(a.Body) == "" {
		return fmt.Errorf("title and body are required: %w", domain.ErrInvalidInput)
	}
	a.Slug = Slugify(a.Title)
	if a.Slug == "" {
		a.Slug = uuid.NewString()
	}
	a.AuthorID = actor.UserID
	if a.Published {
		now := s.now()
		a.PublishedOn = &now
	}
	return s.repo.Create(ctx, a)
}

func (s *careerAdviceService) Update(ctx context.Context, actor domain.Actor, slug string, in *domain.CareerAdvice) (*domain.CareerAdvice, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("only admins can edit career advice: %w", domain.ErrForbidden)
	}
	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Body) == "" {
		return nil, fmt.Errorf("title and body are required: %w", domain.ErrInvalidInput)
	}

	existing.Title = strings.TrimSpace(in.Title)
	existing.Summary = in.Summary
	existing.Body = in.Body
	existing.Category = in.Category
	existing.ImageURL = in.ImageURL
	switch {
	case in.Published && !existing.Published:
		now := s.now()
		existing.PublishedOn = &now
	case !in.Published:
		existing.PublishedOn = nil
	}
	existing.Published = in.Published

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *careerAdviceService) Delete(ctx context.Context, actor domain.Actor, slug string) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("only admins can delete career advice: %w", domain.ErrForbidden)
	}
	existing, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, existing.ID)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/repository"
	"jobboard-backend/internal/utils"
)

type applicationService struct {
	appRepo  repository.ApplicationRepository
	jobRepo  repository.JobRepository
	notifier StatusNotificationService
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	notifier StatusNotificationService,
) ApplicationService {
	return &applicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		notifier: notifier,
	}
}

func (s *applicationService) Create(ctx context.Context, actor domain.Actor, jobID int32, coverLetter, notes string) (*domain.Application, error) {
	if actor.Role != domain.UserRoleSeeker {
		return nil, fmt.Errorf("only job seekers can apply: %w", domain.ErrForbidden)
	}
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	existing, err := s.appRepo.GetByUserAndJob(ctx, actor.UserID, jobID)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("already applied to job %d: %w", jobID, domain.ErrConflict)
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	app := &domain.Application{
		UserID:      actor.UserID,
		JobID:       jobID,
		Status:      domain.ApplicationStatusApplied,
		CoverLetter: coverLetter,
		Notes:       notes,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicationService) Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.UserID == actor.UserID || actor.IsAdmin() {
		return app, nil
	}
	if err := s.requireJobOwner(ctx, actor, app.JobID); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicationService) ListMine(ctx context.Context, actor domain.Actor, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	page, pageSize = normalizePage(page, pageSize)
	return s.appRepo.ListByUser(ctx, actor.UserID, status, page, pageSize)
}

func (s *applicationService) ListForJob(ctx context.Context, actor domain.Actor, jobID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	if err := s.requireJobOwner(ctx, actor, jobID); err != nil {
		return nil, 0, err
	}
	page, pageSize = normalizePage(page, pageSize)
	return s.appRepo.ListByJob(ctx, jobID, status, page, pageSize)
}

func (s *applicationService) Update(ctx context.Context, actor domain.Actor, id int32, coverLetter, notes string) (*domain.Application, error) {
	app, err := s.ownedApplication(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	app.CoverLetter = coverLetter
	app.Notes = notes
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *applicationService) Delete(ctx context.Context, actor domain.Actor, id int32) error {
	if _, err := s.ownedApplication(ctx, actor, id); err != nil {
		return err
	}
	return s.appRepo.Delete(ctx, id)
}

// UpdateStatus moves an application to status and runs the status notification.
// A failed notification is logged; the status change itself stands.
func (s *applicationService) UpdateStatus(ctx context.Context, actor domain.Actor, id int32, status domain.ApplicationStatus) (*domain.Application, *utils.SuppressionDecision, error) {
	if !status.IsValid() {
		return nil, nil, fmt.Errorf("unknown application status %q: %w", status, domain.ErrInvalidInput)
	}
	app, err := s.managedApplication(ctx, actor, id, nil)
	if err != nil {
		return nil, nil, err
	}
	return s.applyStatus(ctx, actor, app, status)
}

// BulkUpdateStatus applies a batch of status changes. When the batch names the
// same application more than once the higher priority status wins, and on a tie
// the entry that appeared first.
//
// Every application is loaded and authorized before anything is written, so a
// missing or foreign application rejects the whole batch. A storage failure
// part way through returns the applications already changed with the error.
func (s *applicationService) BulkUpdateStatus(ctx context.Context, actor domain.Actor, updates []domain.StatusUpdate) ([]domain.Application, error) {
	order := make([]int32, 0, len(updates))
	winners := make(map[int32]domain.ApplicationStatus, len(updates))
	for _, u := range updates {
		if !u.Status.IsValid() {
			return nil, fmt.Errorf("application %d: unknown status %q: %w", u.ApplicationID, u.Status, domain.ErrInvalidInput)
		}
		current, seen := winners[u.ApplicationID]
		if !seen {
			order = append(order, u.ApplicationID)
			winners[u.ApplicationID] = u.Status
			continue
		}
		winners[u.ApplicationID] = utils.GetHigherPriorityStatus(current, u.Status)
	}

	owned := make(map[int32]bool)
	loaded := make([]*domain.Application, 0, len(order))
	for _, id := range order {
		app, err := s.managedApplication(ctx, actor, id, owned)
		if err != nil {
			return nil, fmt.Errorf("application %d: %w", id, err)
		}
		loaded = append(loaded, app)
	}

	apps := make([]domain.Application, 0, len(loaded))
	for _, app := range loaded {
		updated, _, err := s.applyStatus(ctx, actor, app, winners[app.ID])
		if err != nil {
			return apps, fmt.Errorf("application %d: %w", app.ID, err)
		}
		apps = append(apps, *updated)
	}
	return apps, nil
}

// managedApplication loads an application the actor may change the status of.
// owned caches jobs already checked for this actor and may be nil.
func (s *applicationService) managedApplication(ctx context.Context, actor domain.Actor, id int32, owned map[int32]bool) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() || owned[app.JobID] {
		return app, nil
	}
	if err := s.requireJobOwner(ctx, actor, app.JobID); err != nil {
		return nil, err
	}
	if owned != nil {
		owned[app.JobID] = true
	}
	return app, nil
}

func (s *applicationService) applyStatus(ctx context.Context, actor domain.Actor, app *domain.Application, status domain.ApplicationStatus) (*domain.Application, *utils.SuppressionDecision, error) {
	if app.Status == status {
		return app, nil, nil
	}

	if err := s.appRepo.UpdateStatus(ctx, app.ID, status); err != nil {
		return nil, nil, err
	}
	previous := app.Status
	app.Status = status
	logger.InfoContext(ctx, "Application status changed", "application_id", app.ID, "from", previous, "to", status, "by", actor.UserID)

	decision, err := s.notifier.NotifyStatusChange(ctx, app)
	if err != nil {
		logger.ErrorContext(ctx, "Status notification failed", "application_id", app.ID, "status", status, "error", err)
	}
	return app, decision, nil
}

func (s *applicationService) ownedApplication(ctx context.Context, actor domain.Actor, id int32) (*domain.Application, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.UserID != actor.UserID {
		return nil, fmt.Errorf("application %d belongs to another user: %w", id, domain.ErrForbidden)
	}
	return app, nil
}

func (s *applicationService) requireJobOwner(ctx context.Context, actor domain.Actor, jobID int32) error {
	if actor.IsAdmin() {
		return nil
	}
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if actor.Role != domain.UserRoleEmployer || job.EmployerID != actor.UserID {
		return fmt.Errorf("job %d is managed by another employer: %w", jobID, domain.ErrForbidden)
	}
	return nil
}

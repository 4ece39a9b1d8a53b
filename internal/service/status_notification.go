package service

import (
	"context"
	"fmt"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/repository"
	"jobboard-backend/internal/utils"
)

type statusNotificationService struct {
	appRepo  repository.ApplicationRepository
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
	noteRepo repository.NotificationRepository
	emailSvc EmailService
	now      Clock
}

func NewStatusNotificationService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
	now Clock,
) StatusNotificationService {
	return &statusNotificationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		noteRepo: noteRepo,
		emailSvc: emailSvc,
		now:      now,
	}
}

// NotifyStatusChange always records an in-app notification. The email is sent
// only for notifying statuses the suppression policy lets through, after which
// the notified status and send time are persisted on the application.
func (s *statusNotificationService) NotifyStatusChange(ctx context.Context, app *domain.Application) (*utils.SuppressionDecision, error) {
	logger.EnterMethod("statusNotificationService.NotifyStatusChange", "applicationID", app.ID, "status", app.Status)

	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		logger.ExitMethodWithError("statusNotificationService.NotifyStatusChange", err, "jobID", app.JobID)
		return nil, err
	}

	note := &domain.Notification{
		UserID:  app.UserID,
		Title:   "Application update",
		Message: fmt.Sprintf("Your application for %s at %s is now %s", job.Title, job.Company, app.Status),
		Attributes: map[string]string{
			"type":           domain.NotificationTypeStatusChange,
			"application_id": fmt.Sprintf("%d", app.ID),
			"status":         string(app.Status),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.WarnContext(ctx, "Failed to create in-app notification", "applicationID", app.ID, "error", err)
	}

	if !utils.ShouldNotifyStatus(app.Status) {
		decision := &utils.SuppressionDecision{ShouldSuppress: true, Reason: fmt.Sprintf("status %q does not send email", app.Status)}
		logger.ExitMethod("statusNotificationService.NotifyStatusChange", "applicationID", app.ID, "emailed", false)
		return decision, nil
	}

	now := s.now()
	decision := utils.ShouldSuppressStatusEmail(now, app.LastStatusEmailSentAt, app.Status, app.LastStatusNotified)
	logger.InfoContext(ctx, "Status email decision",
		"application_id", app.ID,
		"status", app.Status,
		"suppressed", decision.ShouldSuppress,
		"reason", decision.Reason,
	)
	if decision.ShouldSuppress {
		logger.ExitMethod("statusNotificationService.NotifyStatusChange", "applicationID", app.ID, "emailed", false)
		return &decision, nil
	}

	applicant, err := s.userRepo.GetByID(ctx, app.UserID)
	if err != nil {
		logger.ExitMethodWithError("statusNotificationService.NotifyStatusChange", err, "userID", app.UserID)
		return &decision, err
	}

	if err := s.emailSvc.SendStatusChangeNotification(ctx, applicant.Email, applicant.Name, job.Title, job.Company, app.Status); err != nil {
		logger.ExitMethodWithError("statusNotificationService.NotifyStatusChange", err, "applicationID", app.ID)
		return &decision, err
	}

	notified := app.Status
	if decision.HigherPriorityStatus != nil {
		notified = *decision.HigherPriorityStatus
	}
	if err := s.appRepo.MarkStatusNotified(ctx, app.ID, notified, now); err != nil {
		logger.ExitMethodWithError("statusNotificationService.NotifyStatusChange", err, "applicationID", app.ID)
		return &decision, err
	}
	app.LastStatusNotified = &notified
	app.LastStatusEmailSentAt = &now

	logger.ExitMethod("statusNotificationService.NotifyStatusChange", "applicationID", app.ID, "emailed", true)
	return &decision, nil
}

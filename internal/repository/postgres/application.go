package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/repository"
)

const applicationColumns = `id, user_id, job_id, status, cover_letter, notes, last_status_notified, last_status_email_sent_at, created_on, updated_on`

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func scanApplication(row rowScanner) (domain.Application, error) {
	var (
		a            domain.Application
		lastNotified sql.NullString
		lastSentAt   sql.NullTime
	)
	err := row.Scan(&a.ID, &a.UserID, &a.JobID, &a.Status, &a.CoverLetter, &a.Notes,
		&lastNotified, &lastSentAt, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		return a, err
	}
	if lastNotified.Valid {
		st := domain.ApplicationStatus(lastNotified.String)
		a.LastStatusNotified = &st
	}
	if lastSentAt.Valid {
		ts := lastSentAt.Time
		a.LastStatusEmailSentAt = &ts
	}
	return a, nil
}

func (r *applicationRepository) Create(ctx context.Context, a *domain.Application) error {
	logger.EnterMethod("applicationRepository.Create", "userID", a.UserID, "jobID", a.JobID)

	now := time.Now().UTC()
	query := `INSERT INTO applications (user_id, job_id, status, cover_letter, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	logger.DatabaseCall("INSERT", "applications", "userID", a.UserID, "jobID", a.JobID)
	err := r.db.QueryRowContext(ctx, query, a.UserID, a.JobID, a.Status, a.CoverLetter, a.Notes, now, now).Scan(&a.ID)
	logger.DatabaseResult("INSERT", 1, err, "applicationID", a.ID)
	if err != nil {
		err = translateError(err, "application")
		logger.ExitMethodWithError("applicationRepository.Create", err)
		return err
	}

	a.CreatedOn = now
	a.UpdatedOn = now
	logger.ExitMethod("applicationRepository.Create", "applicationID", a.ID)
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id int32) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	a, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "application")
	}
	return &a, nil
}

func (r *applicationRepository) GetByUserAndJob(ctx context.Context, userID, jobID int32) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE user_id = $1 AND job_id = $2`
	a, err := scanApplication(r.db.QueryRowContext(ctx, query, userID, jobID))
	if err != nil {
		return nil, translateError(err, "application")
	}
	return &a, nil
}

func (r *applicationRepository) Update(ctx context.Context, a *domain.Application) error {
	now := time.Now().UTC()
	query := `UPDATE applications SET cover_letter=$1, notes=$2, updated_on=$3 WHERE id=$4`
	result, err := r.db.ExecContext(ctx, query, a.CoverLetter, a.Notes, now, a.ID)
	if err != nil {
		return err
	}
	if err := requireRows(result, "application"); err != nil {
		return err
	}
	a.UpdatedOn = now
	return nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status=$1, updated_on=$2 WHERE id=$3`
	logger.DatabaseCall("UPDATE", "applications", "applicationID", id, "status", status)
	result, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return err
	}
	return requireRows(result, "application")
}

func (r *applicationRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRows(result, "application")
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	return r.list(ctx, "user_id", userID, status, page, pageSize)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	return r.list(ctx, "job_id", jobID, status, page, pageSize)
}

// list pages through applications filtered by one owning column
func (r *applicationRepository) list(ctx context.Context, column string, id int32, status string, page, pageSize int32) ([]domain.Application, int32, error) {
	where := fmt.Sprintf(" FROM applications WHERE %s = $1", column)
	args := []interface{}{id}
	if status != "" {
		where += " AND status = $2"
		args = append(args, status)
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*)"+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + applicationColumns + where +
		fmt.Sprintf(" ORDER BY updated_on DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, offsetFor(page, pageSize))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apps := make([]domain.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, a)
	}
	return apps, count, rows.Err()
}

func (r *applicationRepository) MarkStatusNotified(ctx context.Context, id int32, status domain.ApplicationStatus, sentAt time.Time) error {
	query := `UPDATE applications SET last_status_notified=$1, last_status_email_sent_at=$2 WHERE id=$3`
	logger.DatabaseCall("UPDATE", "applications", "applicationID", id, "notifiedStatus", status)
	result, err := r.db.ExecContext(ctx, query, status, sentAt, id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err)
		return err
	}
	rows, _ := result.RowsAffected()
	logger.DatabaseResult("UPDATE", rows, nil)
	return requireRows(result, "application")
}

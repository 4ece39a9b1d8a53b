package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.JobRepository
	repository.ApplicationRepository
	repository.SavedSearchRepository
	repository.CareerAdviceRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		JobRepository:          NewJobRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		SavedSearchRepository:  NewSavedSearchRepository(db),
		CareerAdviceRepository: NewCareerAdviceRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}

// DB exposes the underlying handle for jobs that run ad hoc queries
func (s *Store) DB() *sql.DB {
	return s.db
}

// translateError maps driver errors onto domain sentinels
func translateError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", what, domain.ErrConflict)
	}
	return err
}

// requireRows turns an UPDATE/DELETE that touched nothing into ErrNotFound
func requireRows(result sql.Result, what string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return nil
}

func offsetFor(page, pageSize int32) int32 {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository"
)

const savedSearchColumns = `id, user_id, name, query, location, remote_only, alerts_enabled, last_alerted_at, created_on, updated_on`

type savedSearchRepository struct {
	db *sql.DB
}

func NewSavedSearchRepository(db *sql.DB) repository.SavedSearchRepository {
	return &savedSearchRepository{db: db}
}

func scanSavedSearch(row rowScanner) (domain.SavedSearch, error) {
	var (
		s           domain.SavedSearch
		lastAlerted sql.NullTime
	)
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Query, &s.Location, &s.RemoteOnly, &s.AlertsEnabled,
		&lastAlerted, &s.CreatedOn, &s.UpdatedOn)
	if err == nil && lastAlerted.Valid {
		ts := lastAlerted.Time
		s.LastAlertedAt = &ts
	}
	return s, err
}

func (r *savedSearchRepository) Create(ctx context.Context, s *domain.SavedSearch) error {
	now := time.Now().UTC()
	query := `INSERT INTO saved_searches (user_id, name, query, location, remote_only, alerts_enabled, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, s.UserID, s.Name, s.Query, s.Location, s.RemoteOnly, s.AlertsEnabled, now, now).Scan(&s.ID)
	if err != nil {
		return translateError(err, "saved search")
	}
	s.CreatedOn = now
	s.UpdatedOn = now
	return nil
}

func (r *savedSearchRepository) GetByID(ctx context.Context, id int32) (*domain.SavedSearch, error) {
	query := `SELECT ` + savedSearchColumns + ` FROM saved_searches WHERE id = $1`
	s, err := scanSavedSearch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "saved search")
	}
	return &s, nil
}

func (r *savedSearchRepository) Update(ctx context.Context, s *domain.SavedSearch) error {
	now := time.Now().UTC()
	query := `UPDATE saved_searches SET name=$1, query=$2, location=$3, remote_only=$4, alerts_enabled=$5, updated_on=$6 WHERE id=$7`
	result, err := r.db.ExecContext(ctx, query, s.Name, s.Query, s.Location, s.RemoteOnly, s.AlertsEnabled, now, s.ID)
	if err != nil {
		return translateError(err, "saved search")
	}
	if err := requireRows(result, "saved search"); err != nil {
		return err
	}
	s.UpdatedOn = now
	return nil
}

func (r *savedSearchRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM saved_searches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRows(result, "saved search")
}

func (r *savedSearchRepository) ListByUser(ctx context.Context, userID int32) ([]domain.SavedSearch, error) {
	query := `SELECT ` + savedSearchColumns + ` FROM saved_searches WHERE user_id = $1 ORDER BY created_on DESC`
	return r.query(ctx, query, userID)
}

func (r *savedSearchRepository) ListAlertable(ctx context.Context) ([]domain.SavedSearch, error) {
	query := `SELECT ` + savedSearchColumns + ` FROM saved_searches WHERE alerts_enabled = TRUE ORDER BY id`
	return r.query(ctx, query)
}

func (r *savedSearchRepository) MarkAlerted(ctx context.Context, id int32, at time.Time) error {
	result, err := r.db.ExecContext(ctx, `UPDATE saved_searches SET last_alerted_at=$1 WHERE id=$2`, at, id)
	if err != nil {
		return err
	}
	return requireRows(result, "saved search")
}

func (r *savedSearchRepository) query(ctx context.Context, query string, args ...interface{}) ([]domain.SavedSearch, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	searches := make([]domain.SavedSearch, 0)
	for rows.Next() {
		s, err := scanSavedSearch(rows)
		if err != nil {
			return nil, err
		}
		searches = append(searches, s)
	}
	return searches, rows.Err()
}

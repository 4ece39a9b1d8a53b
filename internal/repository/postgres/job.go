package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/repository"
)

const jobColumns = `id, employer_id, title, company, location, description, remote, tags, salary_min_cents, salary_max_cents, created_on`

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (domain.Job, error) {
	var j domain.Job
	err := row.Scan(&j.ID, &j.EmployerID, &j.Title, &j.Company, &j.Location, &j.Description, &j.Remote,
		pq.Array(&j.Tags), &j.SalaryMinCents, &j.SalaryMaxCents, &j.CreatedOn)
	return j, err
}

func (r *jobRepository) GetByID(ctx context.Context, id int32) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	j, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "job")
	}
	return &j, nil
}

func (r *jobRepository) ListCreatedSince(ctx context.Context, since time.Time, query, location string, remoteOnly bool, limit int32) ([]domain.Job, error) {
	sql := `SELECT ` + jobColumns + ` FROM jobs WHERE created_on > $1`
	args := []interface{}{since}

	if q := strings.TrimSpace(query); q != "" {
		args = append(args, "%"+q+"%")
		sql += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d OR company ILIKE $%d)", len(args), len(args), len(args))
	}
	if loc := strings.TrimSpace(location); loc != "" {
		args = append(args, "%"+loc+"%")
		sql += fmt.Sprintf(" AND location ILIKE $%d", len(args))
	}
	if remoteOnly {
		sql += " AND remote = TRUE"
	}
	args = append(args, limit)
	sql += fmt.Sprintf(" ORDER BY created_on ASC, id ASC LIMIT $%d", len(args))

	logger.DatabaseCall("SELECT", "jobs", "since", since, "query", query, "location", location)
	rows, err := r.db.QueryContext(ctx, sql, args...)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logger.DatabaseResult("SELECT", int64(len(jobs)), nil)
	return jobs, nil
}

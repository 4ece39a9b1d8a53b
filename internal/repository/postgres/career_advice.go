package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository"
)

const careerAdviceColumns = `id, slug, title, summary, body, category, image_url, author_id, published, published_on, created_on, updated_on`

type careerAdviceRepository struct {
	db *sql.DB
}

func NewCareerAdviceRepository(db *sql.DB) repository.CareerAdviceRepository {
	return &careerAdviceRepository{db: db}
}

func scanCareerAdvice(row rowScanner) (domain.CareerAdvice, error) {
	var (
		a           domain.CareerAdvice
		publishedOn sql.NullTime
	)
	err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Summary, &a.Body, &a.Category, &a.ImageURL, &a.AuthorID,
		&a.Published, &publishedOn, &a.CreatedOn, &a.UpdatedOn)
	if err == nil && publishedOn.Valid {
		ts := publishedOn.Time
		a.PublishedOn = &ts
	}
	return a, err
}

func (r *careerAdviceRepository) Create(ctx context.Context, a *domain.CareerAdvice) error {
	now := time.Now().UTC()
	query := `INSERT INTO career_advice (slug, title, summary, body, category, image_url, author_id, published, published_on, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, a.Slug, a.Title, a.Summary, a.Body, a.Category, a.ImageURL, a.AuthorID,
		a.Published, a.PublishedOn, now, now).Scan(&a.ID)
	if err != nil {
		return translateError(err, "career advice")
	}
	a.CreatedOn = now
	a.UpdatedOn = now
	return nil
}

func (r *careerAdviceRepository) GetBySlug(ctx context.Context, slug string) (*domain.CareerAdvice, error) {
	query := `SELECT ` + careerAdviceColumns + ` FROM career_advice WHERE slug = $1`
	a, err := scanCareerAdvice(r.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		return nil, translateError(err, "career advice")
	}
	return &a, nil
}

func (r *careerAdviceRepository) Update(ctx context.Context, a *domain.CareerAdvice) error {
	now := time.Now().UTC()
	query := `UPDATE career_advice SET title=$1, summary=$2, body=$3, category=$4, image_url=$5, published=$6, published_on=$7, updated_on=$8 WHERE id=$9`
	result, err := r.db.ExecContext(ctx, query, a.Title, a.Summary, a.Body, a.Category, a.ImageURL, a.Published, a.PublishedOn, now, a.ID)
	if err != nil {
		return err
	}
	if err := requireRows(result, "career advice"); err != nil {
		return err
	}
	a.UpdatedOn = now
	return nil
}

func (r *careerAdviceRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM career_advice WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRows(result, "career advice")
}

func (r *careerAdviceRepository) List(ctx context.Context, category string, includeDrafts bool, page, pageSize int32) ([]domain.CareerAdvice, int32, error) {
	where := " FROM career_advice WHERE 1=1"
	var args []interface{}
	if !includeDrafts {
		where += " AND published = TRUE"
	}
	if category != "" {
		args = append(args, category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, "SELECT count(*)"+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + careerAdviceColumns + where +
		fmt.Sprintf(" ORDER BY COALESCE(published_on, created_on) DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, offsetFor(page, pageSize))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]domain.CareerAdvice, 0)
	for rows.Next() {
		a, err := scanCareerAdvice(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, count, rows.Err()
}

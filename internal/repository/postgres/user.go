package postgres

import (
	"context"
	"database/sql"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	var createdOn time.Time
	query := `SELECT id, email, name, role, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &createdOn)
	if err != nil {
		return nil, translateError(err, "user")
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	return u, nil
}

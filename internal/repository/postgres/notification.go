package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	logger.EnterMethod("notificationRepository.Create", "userID", n.UserID, "title", n.Title)

	attrs, err := json.Marshal(n.Attributes)
	if err != nil {
		logger.ExitMethodWithError("notificationRepository.Create", err, "reason", "failed to marshal attributes")
		return err
	}

	query := `INSERT INTO notifications (user_id, title, message, is_read, attributes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	logger.DatabaseCall("INSERT", "notifications", "userID", n.UserID)

	now := time.Now().UTC()
	err = r.db.QueryRowContext(ctx, query, n.UserID, n.Title, n.Message, n.IsRead, attrs, now).Scan(&n.ID)
	logger.DatabaseResult("INSERT", 1, err, "notificationID", n.ID)

	if err != nil {
		logger.ExitMethodWithError("notificationRepository.Create", err, "userID", n.UserID)
		return err
	}
	n.CreatedOn = now
	logger.ExitMethod("notificationRepository.Create", "notificationID", n.ID)
	return nil
}

func (r *notificationRepository) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM notifications WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, user_id, title, message, is_read, attributes, created_on
	          FROM notifications WHERE user_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	notes := make([]domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		var attrs []byte
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.IsRead, &attrs, &n.CreatedOn); err != nil {
			return nil, 0, err
		}
		if len(attrs) > 0 {
			if err := json.Unmarshal(attrs, &n.Attributes); err != nil {
				return nil, 0, err
			}
		}
		notes = append(notes, n)
	}
	return notes, count, rows.Err()
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID int32) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	return requireRows(result, "notification")
}

func (r *notificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	logger.DatabaseCall("DELETE", "notifications", "cutoff", cutoff)
	result, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE is_read = TRUE AND created_on < $1`, cutoff)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err)
		return 0, err
	}
	rows, err := result.RowsAffected()
	logger.DatabaseResult("DELETE", rows, err)
	return rows, err
}

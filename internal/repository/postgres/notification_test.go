package postgres_test

import (
	"context"
	"testing"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewNotificationRepository(db)
	n := &domain.Notification{
		UserID:     1,
		Title:      "Application update",
		Message:    "Your application moved to interviewing",
		Attributes: map[string]string{"type": domain.NotificationTypeStatusChange},
	}

	mock.ExpectQuery("INSERT INTO notifications").
		WithArgs(n.UserID, n.Title, n.Message, false, []byte(`{"type":"APPLICATION_STATUS"}`), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	require.NoError(t, repo.Create(context.Background(), n))
	assert.Equal(t, int32(3), n.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkAsRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewNotificationRepository(db)

	mock.ExpectExec("UPDATE notifications SET is_read = TRUE").
		WithArgs(int32(3), int32(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.MarkAsRead(context.Background(), 3, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_DeleteReadOlderThan(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewNotificationRepository(db)
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("DELETE FROM notifications WHERE is_read = TRUE AND created_on < \\$1").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 12))

	n, err := repo.DeleteReadOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_List_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewNotificationRepository(db)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM notifications WHERE user_id = \\$1").
		WithArgs(int32(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT (.+) FROM notifications WHERE user_id = \\$1 ORDER BY created_on DESC").
		WithArgs(int32(3), int32(20), int32(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "message", "is_read", "attributes", "created_on"}))

	notes, count, err := repo.List(context.Background(), 3, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), count)
	require.NotNil(t, notes)
	assert.Len(t, notes, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

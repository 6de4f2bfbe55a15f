package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pitchside/internal/common"
	"pitchside/internal/dbmysql"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return gormDB, mock, cleanup
}

func TestChatRepository_SaveDirect(t *testing.T) {
	tests := []struct {
		name        string
		message     *dbmysql.Message
		mockSetup   func(sqlmock.Sqlmock)
		expectError bool
	}{
		{
			name: "successful save",
			message: &dbmysql.Message{
				SenderID:    1,
				RecipientID: 2,
				Body:        "match at five",
				Kind:        common.KindText,
				CreatedAt:   time.Now().UTC(),
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `messages`")).
					WithArgs(uint64(1), uint64(2), "match at five", common.KindText, sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(42, 1))
				mock.ExpectCommit()
			},
			expectError: false,
		},
		{
			name: "database error",
			message: &dbmysql.Message{
				SenderID:    1,
				RecipientID: 2,
				Body:        "match at five",
				Kind:        common.KindText,
				CreatedAt:   time.Now().UTC(),
			},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `messages`")).
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			tt.mockSetup(mock)

			repo := NewChatRepository(db)
			err := repo.SaveDirect(context.Background(), tt.message)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint64(42), tt.message.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChatRepository_ListDirect(t *testing.T) {
	tests := []struct {
		name          string
		beforeID      uint64
		mockSetup     func(sqlmock.Sqlmock)
		expectedCount int
		expectError   bool
	}{
		{
			name:     "newest page",
			beforeID: 0,
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{
					"id", "sender_id", "recipient_id", "body", "kind", "created_at",
				}).
					AddRow(5, 1, 2, "latest", "TEXT", time.Now()).
					AddRow(4, 2, 1, "earlier", "TEXT", time.Now())

				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `messages` WHERE")).
					WithArgs(uint64(1), uint64(2), uint64(2), uint64(1)).
					WillReturnRows(rows)
			},
			expectedCount: 2,
			expectError:   false,
		},
		{
			name:     "older page with cursor",
			beforeID: 4,
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{
					"id", "sender_id", "recipient_id", "body", "kind", "created_at",
				}).
					AddRow(3, 1, 2, "oldest", "TEXT", time.Now())

				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `messages` WHERE")).
					WithArgs(uint64(1), uint64(2), uint64(2), uint64(1), uint64(4)).
					WillReturnRows(rows)
			},
			expectedCount: 1,
			expectError:   false,
		},
		{
			name:     "database error",
			beforeID: 0,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `messages`")).
					WillReturnError(assert.AnError)
			},
			expectedCount: 0,
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			tt.mockSetup(mock)

			repo := NewChatRepository(db)
			messages, err := repo.ListDirect(context.Background(), 1, 2, tt.beforeID, 20)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, messages)
			} else {
				assert.NoError(t, err)
				assert.Len(t, messages, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChatRepository_ListDirect_NewestFirst(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{
		"id", "sender_id", "recipient_id", "body", "kind", "created_at",
	}).
		AddRow(9, 1, 2, "third", "TEXT", time.Now()).
		AddRow(8, 2, 1, "second", "TEXT", time.Now()).
		AddRow(7, 1, 2, "first", "TEXT", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id DESC")).
		WillReturnRows(rows)

	repo := NewChatRepository(db)
	messages, err := repo.ListDirect(context.Background(), 1, 2, 0, 3)

	assert.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "third", messages[0].Body)
	assert.Equal(t, "second", messages[1].Body)
	assert.Equal(t, "first", messages[2].Body)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_ListGroup(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{
		"id", "sender_id", "group_id", "body", "kind", "created_at",
	}).
		AddRow(2, 3, 10, "coach update", "GROUP_CHALLENGE_UPDATE", time.Now()).
		AddRow(1, 4, 10, "warmup done", "TEXT", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `group_messages` WHERE group_id = ?")).
		WithArgs(uint64(10)).
		WillReturnRows(rows)

	repo := NewChatRepository(db)
	messages, err := repo.ListGroup(context.Background(), 10, 0, 20)

	assert.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, common.KindChallengeUpdate, messages[0].Kind)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatRepository_DirectByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{
			"id", "sender_id", "recipient_id", "body", "kind", "created_at",
		}).AddRow(42, 1, 2, "hello", "TEXT", time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `messages` WHERE id = ?")).
			WithArgs(uint64(42), 1).
			WillReturnRows(rows)

		repo := NewChatRepository(db)
		msg, err := repo.DirectByID(context.Background(), 42)

		assert.NoError(t, err)
		require.NotNil(t, msg)
		assert.Equal(t, uint64(1), msg.SenderID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `messages` WHERE id = ?")).
			WithArgs(uint64(42), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		repo := NewChatRepository(db)
		msg, err := repo.DirectByID(context.Background(), 42)

		assert.ErrorIs(t, err, common.ErrNotFound)
		assert.Nil(t, msg)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChatRepository_DeleteDirect(t *testing.T) {
	tests := []struct {
		name        string
		mockSetup   func(sqlmock.Sqlmock)
		expectError bool
		errorIs     error
	}{
		{
			name: "successful delete",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `messages` WHERE id = ?")).
					WithArgs(uint64(42)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "already gone",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `messages` WHERE id = ?")).
					WithArgs(uint64(42)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectError: true,
			errorIs:     common.ErrNotFound,
		},
		{
			name: "database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `messages`")).
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			tt.mockSetup(mock)

			repo := NewChatRepository(db)
			err := repo.DeleteDirect(context.Background(), 42)

			if tt.expectError {
				assert.Error(t, err)
				if tt.errorIs != nil {
					assert.ErrorIs(t, err, tt.errorIs)
				}
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

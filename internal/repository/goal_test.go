package repository

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/goalsetter/internal/db"
	"github.com/templui/goalsetter/internal/model"
)

func newSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init(context.Background(), "sqlite", filepath.Join(t.TempDir(), "goals.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))
	return database
}

func createUser(t *testing.T, repo UserRepository, email string) *model.User {
	t.Helper()

	user := &model.User{Name: "Test", Email: email, PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestGoalRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	database := newSQLiteDB(t)
	users := NewUserRepository(database)
	goals := NewGoalRepository(database)

	alice := createUser(t, users, "alice@example.com")
	bob := createUser(t, users, "bob@example.com")

	g1 := &model.Goal{UserID: alice.ID, Text: "finish report"}
	require.NoError(t, goals.Create(ctx, g1))
	assert.NotEmpty(t, g1.ID)
	assert.False(t, g1.CreatedAt.IsZero())
	assert.Equal(t, g1.CreatedAt, g1.UpdatedAt)

	g2 := &model.Goal{UserID: bob.ID, Text: "learn go"}
	require.NoError(t, goals.Create(ctx, g2))

	t.Run("by id", func(t *testing.T) {
		got, err := goals.ByID(ctx, g1.ID)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.UserID)
		assert.Equal(t, "finish report", got.Text)
	})

	t.Run("by id missing", func(t *testing.T) {
		_, err := goals.ByID(ctx, "nonexistent-id")
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})

	t.Run("list is scoped to owner", func(t *testing.T) {
		list, err := goals.Goals(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, g1.ID, list[0].ID)

		empty, err := goals.Goals(ctx, "nobody")
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})

	t.Run("update keeps owner", func(t *testing.T) {
		changed := *g1
		changed.Text = "finish report today"
		changed.UserID = bob.ID
		require.NoError(t, goals.Update(ctx, &changed))

		got, err := goals.ByID(ctx, g1.ID)
		require.NoError(t, err)
		assert.Equal(t, "finish report today", got.Text)
		assert.Equal(t, alice.ID, got.UserID)
		assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
	})

	t.Run("update missing", func(t *testing.T) {
		err := goals.Update(ctx, &model.Goal{ID: "nonexistent-id", Text: "x"})
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})

	t.Run("delete twice", func(t *testing.T) {
		require.NoError(t, goals.Delete(ctx, g2.ID))
		assert.ErrorIs(t, goals.Delete(ctx, g2.ID), ErrGoalNotFound)

		list, err := goals.Goals(ctx, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mockDB.Close()
	})

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestGoalRepository_DatastoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")

	t.Run("by id propagates driver error", func(t *testing.T) {
		database, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM goals WHERE id = $1")).
			WithArgs("g1").
			WillReturnError(boom)

		_, err := NewGoalRepository(database).ByID(ctx, "g1")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("list propagates driver error", func(t *testing.T) {
		database, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM goals")).
			WithArgs("u1").
			WillReturnError(boom)

		_, err := NewGoalRepository(database).Goals(ctx, "u1")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("update with no rows affected", func(t *testing.T) {
		database, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE goals SET text = $1, updated_at = $2 WHERE id = $3")).
			WithArgs("x", sqlmock.AnyArg(), "g1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewGoalRepository(database).Update(ctx, &model.Goal{ID: "g1", Text: "x"})
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})

	t.Run("delete propagates driver error", func(t *testing.T) {
		database, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM goals WHERE id = $1")).
			WithArgs("g1").
			WillReturnError(boom)

		err := NewGoalRepository(database).Delete(ctx, "g1")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("create sends owner", func(t *testing.T) {
		database, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO goals")).
			WithArgs(sqlmock.AnyArg(), "u1", "buy milk", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		goal := &model.Goal{UserID: "u1", Text: "buy milk"}
		require.NoError(t, NewGoalRepository(database).Create(ctx, goal))
		assert.NotEmpty(t, goal.ID)
	})
}

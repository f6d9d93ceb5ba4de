package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/goalsetter/internal/apperr"
	"github.com/templui/goalsetter/internal/model"
)

var (
	alice = &model.User{ID: "alice", Name: "Alice", Email: "alice@example.com"}
	bob   = &model.User{ID: "bob", Name: "Bob", Email: "bob@example.com"}
)

func newGoalService() (*GoalService, *memGoalRepo, *memUserRepo) {
	goals := &memGoalRepo{}
	users := newMemUserRepo(alice, bob)
	return NewGoalService(goals, users), goals, users
}

func ptr(s string) *string { return &s }

func TestGoalService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newGoalService()

	for _, text := range []string{"", "   "} {
		_, err := svc.Create(ctx, alice.ID, text)
		assert.True(t, apperr.IsValidation(err), "text %q", text)
		assert.EqualError(t, err, "Please add a text field")
	}

	goal, err := svc.Create(ctx, alice.ID, "buy milk")
	require.NoError(t, err)
	assert.NotEmpty(t, goal.ID)
	assert.Equal(t, alice.ID, goal.UserID)
	assert.Equal(t, "buy milk", goal.Text)
}

func TestGoalService_GoalsScopedToOwner(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newGoalService()

	a1, err := svc.Create(ctx, alice.ID, "run 5k")
	require.NoError(t, err)
	a2, err := svc.Create(ctx, alice.ID, "read a book")
	require.NoError(t, err)
	b1, err := svc.Create(ctx, bob.ID, "learn go")
	require.NoError(t, err)

	goals, err := svc.Goals(ctx, alice.ID)
	require.NoError(t, err)

	var ids []string
	for _, g := range goals {
		ids = append(ids, g.ID)
		assert.Equal(t, alice.ID, g.UserID)
	}
	assert.ElementsMatch(t, []string{a1.ID, a2.ID}, ids)
	assert.NotContains(t, ids, b1.ID)
}

func TestGoalService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("owner updates text", func(t *testing.T) {
		svc, _, _ := newGoalService()
		goal, err := svc.Create(ctx, alice.ID, "finish report")
		require.NoError(t, err)

		updated, err := svc.Update(ctx, alice.ID, goal.ID, model.GoalUpdate{Text: ptr("x")})
		require.NoError(t, err)
		assert.Equal(t, "x", updated.Text)
		assert.Equal(t, alice.ID, updated.UserID)
	})

	t.Run("other user is rejected and goal unchanged", func(t *testing.T) {
		svc, _, _ := newGoalService()
		goal, err := svc.Create(ctx, alice.ID, "finish report")
		require.NoError(t, err)

		_, err = svc.Update(ctx, bob.ID, goal.ID, model.GoalUpdate{Text: ptr("hacked")})
		assert.True(t, apperr.IsUnauthorized(err))
		assert.EqualError(t, err, "User not authorized")

		goals, err := svc.Goals(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, "finish report", goals[0].Text)
	})

	t.Run("vanished user is rejected", func(t *testing.T) {
		svc, _, users := newGoalService()
		goal, err := svc.Create(ctx, alice.ID, "finish report")
		require.NoError(t, err)
		delete(users.users, alice.ID)

		_, err = svc.Update(ctx, alice.ID, goal.ID, model.GoalUpdate{Text: ptr("x")})
		assert.True(t, apperr.IsUnauthorized(err))
		assert.EqualError(t, err, "User not found")
	})

	t.Run("missing goal", func(t *testing.T) {
		svc, _, _ := newGoalService()

		_, err := svc.Update(ctx, alice.ID, "nonexistent-id", model.GoalUpdate{Text: ptr("x")})
		assert.True(t, apperr.IsNotFound(err))
		assert.EqualError(t, err, "Goal not found")
	})

	t.Run("missing goal wins over unknown user", func(t *testing.T) {
		svc, _, _ := newGoalService()

		_, err := svc.Update(ctx, "ghost", "nonexistent-id", model.GoalUpdate{})
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		svc, _, _ := newGoalService()
		goal, err := svc.Create(ctx, alice.ID, "finish report")
		require.NoError(t, err)

		_, err = svc.Update(ctx, alice.ID, goal.ID, model.GoalUpdate{Text: ptr("  ")})
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("absent text keeps value", func(t *testing.T) {
		svc, _, _ := newGoalService()
		goal, err := svc.Create(ctx, alice.ID, "finish report")
		require.NoError(t, err)

		updated, err := svc.Update(ctx, alice.ID, goal.ID, model.GoalUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "finish report", updated.Text)
	})
}

func TestGoalService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newGoalService()

	goal, err := svc.Create(ctx, alice.ID, "finish report")
	require.NoError(t, err)

	_, err = svc.Delete(ctx, bob.ID, goal.ID)
	assert.True(t, apperr.IsUnauthorized(err))

	id, err := svc.Delete(ctx, alice.ID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, id)

	goals, err := svc.Goals(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, goals)

	_, err = svc.Delete(ctx, alice.ID, goal.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGoalService_DatastoreFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")

	svc, goals, users := newGoalService()
	goals.err = boom

	_, err := svc.Goals(ctx, alice.ID)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	assert.ErrorIs(t, err, boom)

	_, err = svc.Create(ctx, alice.ID, "buy milk")
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))

	_, err = svc.Delete(ctx, alice.ID, "g1")
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))

	goals.err = nil
	goal, err := svc.Create(ctx, alice.ID, "buy milk")
	require.NoError(t, err)

	users.err = boom
	_, err = svc.Update(ctx, alice.ID, goal.ID, model.GoalUpdate{Text: ptr("x")})
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	assert.ErrorContains(t, err, "connection reset")
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/templui/goalsetter/internal/apperr"
	"github.com/templui/goalsetter/internal/model"
	"github.com/templui/goalsetter/internal/repository"
	"github.com/templui/goalsetter/internal/validation"
)

const (
	msgGoalNotFound      = "Goal not found"
	msgUserNotFound      = "User not found"
	msgUserNotAuthorized = "User not authorized"
)

// GoalService owns goal CRUD for an authenticated user. Every returned error
// is an *apperr.Error.
type GoalService struct {
	repo     repository.GoalRepository
	userRepo repository.UserRepository
}

func NewGoalService(repo repository.GoalRepository, userRepo repository.UserRepository) *GoalService {
	return &GoalService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Goals lists the goals owned by userID in datastore order.
func (s *GoalService) Goals(ctx context.Context, userID string) ([]*model.Goal, error) {
	goals, err := s.repo.Goals(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to list goals: %w", err))
	}

	return goals, nil
}

func (s *GoalService) Create(ctx context.Context, userID, text string) (*model.Goal, error) {
	text, err := validation.GoalText(text)
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}

	goal := &model.Goal{
		UserID: userID,
		Text:   text,
	}

	err = s.repo.Create(ctx, goal)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to create goal: %w", err))
	}

	return goal, nil
}

// Update applies the whitelisted fields in upd to a goal the user owns.
func (s *GoalService) Update(ctx context.Context, userID, goalID string, upd model.GoalUpdate) (*model.Goal, error) {
	goal, err := s.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if upd.Text != nil {
		text, err := validation.GoalText(*upd.Text)
		if err != nil {
			return nil, apperr.Validation(err.Error())
		}
		goal.Text = text
	}

	err = s.repo.Update(ctx, goal)
	if errors.Is(err, repository.ErrGoalNotFound) {
		return nil, apperr.NotFound(msgGoalNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to update goal: %w", err))
	}

	return goal, nil
}

// Delete removes a goal the user owns and returns its id.
func (s *GoalService) Delete(ctx context.Context, userID, goalID string) (string, error) {
	goal, err := s.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return "", err
	}

	err = s.repo.Delete(ctx, goal.ID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		return "", apperr.NotFound(msgGoalNotFound)
	}
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("failed to delete goal: %w", err))
	}

	return goal.ID, nil
}

// ownedGoal loads the goal and checks that userID still resolves to a user
// who owns it. The lookup order fixes which error wins: a missing goal is
// reported before a missing or mismatched user.
func (s *GoalService) ownedGoal(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	goal, err := s.repo.ByID(ctx, goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		return nil, apperr.NotFound(msgGoalNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to get goal: %w", err))
	}

	user, err := s.userRepo.ByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperr.Unauthorized(msgUserNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to get user: %w", err))
	}

	if goal.UserID != user.ID {
		slog.WarnContext(ctx, "goal access denied", "user_id", user.ID, "goal_id", goal.ID)
		return nil, apperr.Unauthorized(msgUserNotAuthorized)
	}

	return goal, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/templui/goalsetter/internal/apperr"
	"github.com/templui/goalsetter/internal/model"
	"github.com/templui/goalsetter/internal/repository"
	"github.com/templui/goalsetter/internal/validation"
)

type UserService struct {
	userRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

// ByID resolves the authenticated user. A token whose user no longer exists
// is reported as unauthorized.
func (s *UserService) ByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepository.ByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperr.Unauthorized(msgUserNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to get user: %w", err))
	}

	return user, nil
}

// ByEmail is used by tooling to mint tokens for existing accounts.
func (s *UserService) ByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepository.ByEmail(ctx, validation.NormalizeEmail(email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperr.NotFound(msgUserNotFound)
	}
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("failed to get user: %w", err))
	}

	return user, nil
}

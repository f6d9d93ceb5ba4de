package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/templui/goalsetter/internal/model"
	"github.com/templui/goalsetter/internal/repository"
)

type memGoalRepo struct {
	mu    sync.Mutex
	seq   int
	goals []*model.Goal
	err   error
}

func (r *memGoalRepo) Create(_ context.Context, goal *model.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.seq++
	goal.ID = fmt.Sprintf("g%d", r.seq)
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = goal.CreatedAt
	stored := *goal
	r.goals = append(r.goals, &stored)
	return nil
}

func (r *memGoalRepo) ByID(_ context.Context, goalID string) (*model.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, g := range r.goals {
		if g.ID == goalID {
			copied := *g
			return &copied, nil
		}
	}
	return nil, repository.ErrGoalNotFound
}

func (r *memGoalRepo) Goals(_ context.Context, userID string) ([]*model.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	goals := []*model.Goal{}
	for _, g := range r.goals {
		if g.UserID == userID {
			copied := *g
			goals = append(goals, &copied)
		}
	}
	return goals, nil
}

func (r *memGoalRepo) Update(_ context.Context, goal *model.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, g := range r.goals {
		if g.ID == goal.ID {
			g.Text = goal.Text
			g.UpdatedAt = time.Now()
			goal.UpdatedAt = g.UpdatedAt
			return nil
		}
	}
	return repository.ErrGoalNotFound
}

func (r *memGoalRepo) Delete(_ context.Context, goalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for i, g := range r.goals {
		if g.ID == goalID {
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			return nil
		}
	}
	return repository.ErrGoalNotFound
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
	err   error
}

func newMemUserRepo(users ...*model.User) *memUserRepo {
	r := &memUserRepo{users: map[string]*model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = fmt.Sprintf("u%d", len(r.users)+1)
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) ByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) ByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

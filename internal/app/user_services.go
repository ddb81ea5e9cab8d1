package app

import (
	"context"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/users"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/logger"
)

// userService implements the UserService interface
type userService struct {
	userRepo users.UserRepository
	logger   logger.Logger
}

// NewUserService creates a new userService instance
func NewUserService(userRepo users.UserRepository, logger logger.Logger) (users.UserService, error) {
	return &userService{userRepo: userRepo, logger: logger}, nil
}

func (s *userService) Add(ctx context.Context, user *users.User) (*users.User, error) {
	created := *user
	created.SetRoles(user.Roles)
	ts := now()
	created.CreatedAt = ts
	created.UpdatedAt = ts

	if err := s.userRepo.Create(ctx, &created); err != nil {
		return nil, err
	}
	s.logger.Info("User ", created.Login, " added with roles ", created.Roles)
	return &created, nil
}

func (s *userService) Get(ctx context.Context, login string) (*users.User, error) {
	return s.userRepo.GetByLogin(ctx, login)
}

func (s *userService) List(ctx context.Context, activeOnly bool) ([]*users.User, error) {
	return s.userRepo.List(ctx, activeOnly)
}

func (s *userService) Update(ctx context.Context, login string, update *users.UserUpdate) (*users.User, error) {
	user, err := s.userRepo.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	update.Apply(user)
	user.UpdatedAt = now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("User ", login, " updated")
	return user, nil
}

package users

import (
	"context"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByLogin(ctx context.Context, login string) (*User, error)
	List(ctx context.Context, activeOnly bool) ([]*User, error)
	Update(ctx context.Context, user *User) error
}

// UserService manages users.
type UserService interface {
	Add(ctx context.Context, user *User) (*User, error)
	Get(ctx context.Context, login string) (*User, error)
	List(ctx context.Context, activeOnly bool) ([]*User, error)
	Update(ctx context.Context, login string, update *UserUpdate) (*User, error)
}

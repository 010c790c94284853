package usecase

import (
	"context"
	"time"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required to register a new user. New users
// always receive the default role.
type CreateUserInput struct {
	UserName string
	Password string
}

// UpdateUserInput defines the fields applied to an existing user. The
// password is rehashed; the role reference must point at an existing role.
type UpdateUserInput struct {
	UserName string
	Password string
	RoleID   uuid.UUID
}

// AuthenticateInput defines the credentials for a login attempt.
type AuthenticateInput struct {
	UserName string
	Password string
}

// AuthenticateOutput returns the issued access token after a successful login.
type AuthenticateOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	Authenticate(ctx context.Context, input AuthenticateInput) (*AuthenticateOutput, error)
}

package usecase

import (
	"context"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleUsecase defines the interface for role-related business operations.
// Roles are static reference data, so there are no write operations.
type RoleUsecase interface {
	ListRoles(ctx context.Context) ([]*entity.Role, error)
	GetRole(ctx context.Context, id uuid.UUID) (*entity.Role, error)

	// GetUsersWithRole lists the users holding the named role.
	GetUsersWithRole(ctx context.Context, name string) ([]*entity.User, error)
}

package impl

import (
	"context"
	"log/slog"

	deliverycontext "eshop/internal/delivery/context"
	"eshop/internal/domain/entity"
	"eshop/internal/domain/repository"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// roleService implements the RoleUsecase interface.
type roleService struct {
	repos  repository.Repositories
	logger *slog.Logger
}

// RoleServiceParams holds dependencies for roleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	Repositories repository.Repositories
	Logger       *slog.Logger
}

// NewRoleService is the constructor for roleService. Roles are read-only
// reference data, so no unit of work is needed.
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		repos:  params.Repositories,
		logger: params.Logger,
	}
}

func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRoles returns every role.
func (srv *roleService) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.repos.Roles().GetAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list roles", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

// GetRole returns one role.
func (srv *roleService) GetRole(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	role, err := srv.repos.Roles().GetByID(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Failed to get role", slog.Any("roleID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get role")
	}

	return role, nil
}

// GetUsersWithRole lists the users holding the named role.
func (srv *roleService) GetUsersWithRole(ctx context.Context, name string) ([]*entity.User, error) {
	role, err := srv.repos.Roles().FindByNameWithUsers(ctx, name)
	if err != nil {
		srv.log(ctx).Warn("Failed to find role by name", slog.String("role", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return role.Users, nil
}

package impl

import (
	"context"
	"testing"

	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type roleServiceFixtures struct {
	service usecase.RoleUsecase
	repos   *fakeRepositories
}

func createTestRoleService(t *testing.T) *roleServiceFixtures {
	t.Helper()

	repos := newFakeRepositories()
	service := NewRoleService(RoleServiceParams{
		Repositories: repos,
		Logger:       testLogger(),
	})

	return &roleServiceFixtures{service: service, repos: repos}
}

func TestRoleService_ListRoles_Success(t *testing.T) {
	f := createTestRoleService(t)

	expected := []*entity.Role{
		{ID: uuid.New(), Name: entity.RoleAdmin},
		{ID: uuid.New(), Name: entity.RoleUser},
	}
	f.repos.roles.On("GetAll", mock.Anything).Return(expected, nil)

	roles, err := f.service.ListRoles(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, roles)
}

func TestRoleService_GetUsersWithRole_Success(t *testing.T) {
	f := createTestRoleService(t)

	users := []*entity.User{{ID: uuid.New(), UserName: "alice"}}
	role := &entity.Role{ID: uuid.New(), Name: entity.RoleAdmin, Users: users}
	f.repos.roles.On("FindByNameWithUsers", mock.Anything, entity.RoleAdmin).Return(role, nil)

	got, err := f.service.GetUsersWithRole(context.Background(), entity.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, users, got)
	f.repos.roles.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
}

func TestRoleService_GetUsersWithRole_UnknownRole(t *testing.T) {
	f := createTestRoleService(t)

	f.repos.roles.On("FindByNameWithUsers", mock.Anything, "Ghost").Return(nil, domainerrors.ErrRoleNotFound)

	got, err := f.service.GetUsersWithRole(context.Background(), "Ghost")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotFound))
}

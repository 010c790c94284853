package impl

import (
	"context"
	"testing"
	"time"

	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	repos    *fakeRepositories
	hasher   *mockPasswordHasher
	tokenSvc *mockTokenService
}

func createTestUserService(t *testing.T) *userServiceFixtures {
	t.Helper()

	repos := newFakeRepositories()
	hasher := &mockPasswordHasher{}
	tokenSvc := &mockTokenService{}
	service := NewUserService(UserServiceParams{
		UnitOfWork:   &fakeUnitOfWork{repos: repos},
		Repositories: repos,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       testLogger(),
	})

	return &userServiceFixtures{service: service, repos: repos, hasher: hasher, tokenSvc: tokenSvc}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	f := createTestUserService(t)

	defaultRole := &entity.Role{ID: uuid.New(), Name: entity.RoleUser}
	f.hasher.On("ValidateStrength", "Str0ng-Pass").Return(nil)
	f.hasher.On("Hash", "Str0ng-Pass").Return("hashed-value", nil)
	f.repos.users.On("FindByUserName", mock.Anything, "alice").Return(nil, domainerrors.ErrUserNotFound)
	f.repos.roles.On("FindByName", mock.Anything, entity.RoleUser).Return(defaultRole, nil)
	f.repos.users.On("Add", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.UserName == "alice" && u.HashedPassword == "hashed-value" && u.RoleID == defaultRole.ID
	})).Return(nil)

	user, err := f.service.CreateUser(context.Background(), usecase.CreateUserInput{
		UserName: "alice",
		Password: "Str0ng-Pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)
	require.NotNil(t, user.Role)
	assert.Equal(t, entity.RoleUser, user.Role.Name)
	f.repos.users.AssertExpectations(t)
	f.repos.roles.AssertExpectations(t)
	f.repos.roles.AssertNotCalled(t, "FindByNameWithUsers", mock.Anything, mock.Anything)
}

func TestUserService_CreateUser_DuplicateUserName(t *testing.T) {
	f := createTestUserService(t)

	f.hasher.On("ValidateStrength", "Str0ng-Pass").Return(nil)
	f.hasher.On("Hash", "Str0ng-Pass").Return("hashed-value", nil)
	existing := &entity.User{ID: uuid.New(), UserName: "alice"}
	f.repos.users.On("FindByUserName", mock.Anything, "alice").Return(existing, nil)

	user, err := f.service.CreateUser(context.Background(), usecase.CreateUserInput{
		UserName: "alice",
		Password: "Str0ng-Pass",
	})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNameTaken))
	f.repos.users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestUserService_CreateUser_ConcurrentInsertHitsUniqueIndex(t *testing.T) {
	f := createTestUserService(t)

	defaultRole := &entity.Role{ID: uuid.New(), Name: entity.RoleUser}
	f.hasher.On("ValidateStrength", "Str0ng-Pass").Return(nil)
	f.hasher.On("Hash", "Str0ng-Pass").Return("hashed-value", nil)
	f.repos.users.On("FindByUserName", mock.Anything, "alice").Return(nil, domainerrors.ErrUserNotFound)
	f.repos.roles.On("FindByName", mock.Anything, entity.RoleUser).Return(defaultRole, nil)
	f.repos.users.On("Add", mock.Anything, mock.Anything).Return(domainerrors.ErrUserNameTaken)

	user, err := f.service.CreateUser(context.Background(), usecase.CreateUserInput{
		UserName: "alice",
		Password: "Str0ng-Pass",
	})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNameTaken))
}

func TestUserService_CreateUser_WeakPassword(t *testing.T) {
	f := createTestUserService(t)

	f.hasher.On("ValidateStrength", "weak").Return(domainerrors.ErrPasswordStrength)

	user, err := f.service.CreateUser(context.Background(), usecase.CreateUserInput{
		UserName: "alice",
		Password: "weak",
	})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	f.repos.users.AssertNotCalled(t, "FindByUserName", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser_Success(t *testing.T) {
	f := createTestUserService(t)

	userID := uuid.New()
	roleID := uuid.New()
	existing := &entity.User{ID: userID, UserName: "alice", HashedPassword: "old-hash"}
	role := &entity.Role{ID: roleID, Name: entity.RoleAdmin}

	f.hasher.On("ValidateStrength", "N3w-Passw0rd").Return(nil)
	f.hasher.On("Hash", "N3w-Passw0rd").Return("new-hash", nil)
	f.repos.users.On("GetByID", mock.Anything, userID).Return(existing, nil)
	f.repos.roles.On("GetByID", mock.Anything, roleID).Return(role, nil)
	f.repos.users.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.ID == userID && u.UserName == "alice2" && u.HashedPassword == "new-hash" && u.RoleID == roleID
	})).Return(nil)

	user, err := f.service.UpdateUser(context.Background(), userID, usecase.UpdateUserInput{
		UserName: "alice2",
		Password: "N3w-Passw0rd",
		RoleID:   roleID,
	})

	require.NoError(t, err)
	assert.Equal(t, "alice2", user.UserName)
	require.NotNil(t, user.Role)
	assert.Equal(t, entity.RoleAdmin, user.Role.Name)
	f.repos.users.AssertExpectations(t)
}

func TestUserService_UpdateUser_UnknownRole(t *testing.T) {
	f := createTestUserService(t)

	userID := uuid.New()
	roleID := uuid.New()
	existing := &entity.User{ID: userID, UserName: "alice"}

	f.hasher.On("ValidateStrength", "N3w-Passw0rd").Return(nil)
	f.hasher.On("Hash", "N3w-Passw0rd").Return("new-hash", nil)
	f.repos.users.On("GetByID", mock.Anything, userID).Return(existing, nil)
	f.repos.roles.On("GetByID", mock.Anything, roleID).Return(nil, domainerrors.ErrRoleNotFound)

	user, err := f.service.UpdateUser(context.Background(), userID, usecase.UpdateUserInput{
		UserName: "alice",
		Password: "N3w-Passw0rd",
		RoleID:   roleID,
	})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrRoleNotFound))
	f.repos.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_Authenticate_Success(t *testing.T) {
	f := createTestUserService(t)

	expiresAt := time.Now().Add(time.Hour)
	user := &entity.User{
		ID:             uuid.New(),
		UserName:       "alice",
		HashedPassword: "hashed-value",
		Role:           &entity.Role{Name: entity.RoleAdmin},
	}
	f.repos.users.On("FindByUserName", mock.Anything, "alice").Return(user, nil)
	f.hasher.On("Check", "hashed-value", "Str0ng-Pass").Return(true)
	f.tokenSvc.On("GenerateAccessToken", "alice", entity.RoleAdmin).Return("signed-token", expiresAt, nil)

	output, err := f.service.Authenticate(context.Background(), usecase.AuthenticateInput{
		UserName: "alice",
		Password: "Str0ng-Pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Equal(t, user, output.User)
	f.tokenSvc.AssertExpectations(t)
}

func TestUserService_Authenticate_UnknownUser(t *testing.T) {
	f := createTestUserService(t)

	f.repos.users.On("FindByUserName", mock.Anything, "ghost").Return(nil, domainerrors.ErrUserNotFound)

	output, err := f.service.Authenticate(context.Background(), usecase.AuthenticateInput{
		UserName: "ghost",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	f.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	f := createTestUserService(t)

	user := &entity.User{
		ID:             uuid.New(),
		UserName:       "alice",
		HashedPassword: "hashed-value",
		Role:           &entity.Role{Name: entity.RoleUser},
	}
	f.repos.users.On("FindByUserName", mock.Anything, "alice").Return(user, nil)
	f.hasher.On("Check", "hashed-value", "wrong").Return(false)

	output, err := f.service.Authenticate(context.Background(), usecase.AuthenticateInput{
		UserName: "alice",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	f.tokenSvc.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	f := createTestUserService(t)

	id := uuid.New()
	existing := &entity.User{ID: id, UserName: "alice"}
	f.repos.users.On("GetByID", mock.Anything, id).Return(existing, nil)
	f.repos.users.On("Delete", mock.Anything, existing).Return(nil)

	err := f.service.DeleteUser(context.Background(), id)

	require.NoError(t, err)
	f.repos.users.AssertExpectations(t)
}

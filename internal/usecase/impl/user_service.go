package impl

import (
	"context"
	"log/slog"

	deliverycontext "eshop/internal/delivery/context"
	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/repository"
	"eshop/internal/domain/service"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	uow          repository.UnitOfWork
	repos        repository.Repositories
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UnitOfWork   repository.UnitOfWork
	Repositories repository.Repositories
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		uow:          params.UnitOfWork,
		repos:        params.Repositories,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every user with their role.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.repos.Users().GetAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns one user with their role.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.repos.Users().GetByID(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Failed to get user", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// CreateUser registers a new account. The username must be free, the password
// must satisfy the strength rules, and the account receives the default role.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Registering user", slog.String("userName", input.UserName))

	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("userName", input.UserName), slog.Any("error", err))

		return nil, err
	}

	// Hashing is CPU-bound; keep it outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	var created *entity.User
	err = srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		// The unique index on user_name is the actual guard; a concurrent
		// insert slipping past this check surfaces from Add as ErrUserNameTaken.
		_, err := repos.Users().FindByUserName(ctx, input.UserName)
		if err == nil {
			return domainerrors.ErrUserNameTaken
		}
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			return err
		}

		defaultRole, err := repos.Roles().FindByName(ctx, entity.RoleUser)
		if err != nil {
			return errors.Wrap(err, "default role is missing")
		}

		user := &entity.User{
			UserName:       input.UserName,
			HashedPassword: hashedPassword,
			RoleID:         defaultRole.ID,
		}
		if err := repos.Users().Add(ctx, user); err != nil {
			return err
		}

		user.Role = &entity.Role{ID: defaultRole.ID, Name: defaultRole.Name}
		created = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to register user", slog.String("userName", input.UserName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Debug("User registered", slog.Any("userID", created.ID))

	return created, nil
}

// UpdateUser loads the user, checks the referenced role exists, rehashes the
// password and saves the merged record.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during update", slog.Any("userID", id), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during update", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	var updated *entity.User
	err = srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		user, err := repos.Users().GetByID(ctx, id)
		if err != nil {
			return err
		}

		role, err := repos.Roles().GetByID(ctx, input.RoleID)
		if err != nil {
			return err
		}

		user.UserName = input.UserName
		user.HashedPassword = hashedPassword
		user.RoleID = role.ID
		user.Role = nil
		if err := repos.Users().Update(ctx, user); err != nil {
			return err
		}

		user.Role = &entity.Role{ID: role.ID, Name: role.Name}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update user", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user")
	}

	return updated, nil
}

// DeleteUser removes the account. The user's orders go with it.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		user, err := repos.Users().GetByID(ctx, id)
		if err != nil {
			return err
		}

		return repos.Users().Delete(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete user", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

// Authenticate verifies the credentials and issues an access token. An
// unknown username and a wrong password stay distinct error kinds.
func (srv *userService) Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	srv.log(ctx).Debug("Authenticating user", slog.String("userName", input.UserName))

	user, err := srv.repos.Users().FindByUserName(ctx, input.UserName)
	if err != nil {
		srv.log(ctx).Warn("Authentication failed", slog.String("userName", input.UserName), slog.Any("error", err))

		return nil, errors.Wrap(err, "authentication failed")
	}

	if !srv.hasher.Check(user.HashedPassword, input.Password) {
		srv.log(ctx).Warn("Authentication failed", slog.String("userName", input.UserName), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
	}

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user.UserName, roleName)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.String("userName", input.UserName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User authenticated", slog.Any("userID", user.ID))

	return &usecase.AuthenticateOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

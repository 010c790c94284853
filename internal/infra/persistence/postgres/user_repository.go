package postgres

import (
	"context"

	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/repository"
	"eshop/internal/errors"
	"eshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements the domain UserRepository interface using GORM.
type userRepository struct {
	gormRepository[entity.User, model.UserModel]
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		gormRepository: gormRepository[entity.User, model.UserModel]{
			db:            db,
			toDomain:      toUserDomain,
			fromDomain:    fromUserDomain,
			preloads:      []string{"Role"},
			notFound:      domainerrors.ErrUserNotFound,
			onConflict:    domainerrors.ErrUserNameTaken,
			onFKViolation: domainerrors.ErrRoleNotFound,
			label:         "user",
		},
	}
}

// FindByUserName retrieves a single user by the unique username, with the
// owning role loaded for token issuance.
func (repo *userRepository) FindByUserName(ctx context.Context, userName string) (*entity.User, error) {
	var m model.UserModel
	err := repo.query(ctx).Where("user_name = ?", userName).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find user by username")
	}

	return toUserDomain(&m), nil
}

// toUserDomain maps the persistence model to a pure domain entity.
func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:             m.ID,
		UserName:       m.UserName,
		HashedPassword: m.HashedPassword,
		RoleID:         m.RoleID,
		Role:           toRoleDomain(m.Role),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	for _, order := range m.Orders {
		user.Orders = append(user.Orders, toOrderDomain(order))
	}

	return user
}

// fromUserDomain maps the domain entity to its persistence model.
func fromUserDomain(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:             e.ID,
		UserName:       e.UserName,
		HashedPassword: e.HashedPassword,
		RoleID:         e.RoleID,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

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

// roleRepository implements the domain RoleRepository interface using GORM.
type roleRepository struct {
	gormRepository[entity.Role, model.RoleModel]
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		gormRepository: gormRepository[entity.Role, model.RoleModel]{
			db:         db,
			toDomain:   toRoleDomain,
			fromDomain: fromRoleDomain,
			notFound:   domainerrors.ErrRoleNotFound,
			label:      "role",
		},
	}
}

// FindByName retrieves a role by its unique name. The user association stays
// unloaded; registration and token issuance only need the role row itself.
func (repo *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var m model.RoleModel
	err := repo.query(ctx).Where("name = ?", name).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrRoleNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find role by name")
	}

	return toRoleDomain(&m), nil
}

// FindByNameWithUsers retrieves a role by name with every user holding it.
func (repo *roleRepository) FindByNameWithUsers(ctx context.Context, name string) (*entity.Role, error) {
	var m model.RoleModel
	err := repo.query(ctx).Preload("Users").Where("name = ?", name).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrRoleNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find role by name")
	}

	return toRoleDomain(&m), nil
}

// toRoleDomain maps the persistence model to a pure domain entity.
func toRoleDomain(m *model.RoleModel) *entity.Role {
	if m == nil {
		return nil
	}

	role := &entity.Role{
		ID:   m.ID,
		Name: m.Name,
	}
	for _, user := range m.Users {
		role.Users = append(role.Users, toUserDomain(user))
	}

	return role
}

// fromRoleDomain maps the domain entity to its persistence model.
func fromRoleDomain(e *entity.Role) *model.RoleModel {
	if e == nil {
		return nil
	}

	return &model.RoleModel{
		ID:   e.ID,
		Name: e.Name,
	}
}

package postgres

import (
	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/repository"
	"eshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// categoryRepository implements the domain CategoryRepository interface using GORM.
type categoryRepository struct {
	gormRepository[entity.Category, model.CategoryModel]
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		gormRepository: gormRepository[entity.Category, model.CategoryModel]{
			db:         db,
			toDomain:   toCategoryDomain,
			fromDomain: fromCategoryDomain,
			preloads:   []string{"Products"},
			notFound:   domainerrors.ErrCategoryNotFound,
			label:      "category",
		},
	}
}

// toCategoryDomain maps the persistence model to a pure domain entity.
func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	category := &entity.Category{
		ID:   m.ID,
		Name: m.Name,
	}
	for _, p := range m.Products {
		category.Products = append(category.Products, toProductDomain(p))
	}

	return category
}

// fromCategoryDomain maps the domain entity to its persistence model. Loaded
// products stay behind; association writes go through their own repository.
func fromCategoryDomain(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:   e.ID,
		Name: e.Name,
	}
}

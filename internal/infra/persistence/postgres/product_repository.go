package postgres

import (
	"context"

	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/repository"
	"eshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// productRepository implements the domain ProductRepository interface using GORM.
type productRepository struct {
	gormRepository[entity.Product, model.ProductModel]
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		gormRepository: gormRepository[entity.Product, model.ProductModel]{
			db:            db,
			toDomain:      toProductDomain,
			fromDomain:    fromProductDomain,
			preloads:      []string{"Category"},
			notFound:      domainerrors.ErrProductNotFound,
			onFKViolation: domainerrors.ErrCategoryNotFound,
			label:         "product",
		},
	}
}

// FindByFilter returns products matching every present clause of the filter.
// Zero-valued clauses impose no constraint, so an empty filter lists all
// products.
func (repo *productRepository) FindByFilter(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	tx := repo.query(ctx)
	if filter.NameContains != "" {
		tx = tx.Where("name ILIKE ?", "%"+filter.NameContains+"%")
	}
	if filter.DescriptionContains != "" {
		tx = tx.Where("description ILIKE ?", "%"+filter.DescriptionContains+"%")
	}
	if filter.MinPrice > 0 {
		tx = tx.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		tx = tx.Where("price <= ?", filter.MaxPrice)
	}
	if filter.CategoryID != uuid.Nil {
		tx = tx.Where("category_id = ?", filter.CategoryID)
	}

	var models []*model.ProductModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to filter products")
	}

	result := make([]*entity.Product, 0, len(models))
	for _, m := range models {
		result = append(result, toProductDomain(m))
	}

	return result, nil
}

// toProductDomain maps the persistence model to a pure domain entity.
func toProductDomain(m *model.ProductModel) *entity.Product {
	if m == nil {
		return nil
	}

	return &entity.Product{
		ID:          m.ID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Category:    toCategoryDomain(m.Category),
	}
}

// fromProductDomain maps the domain entity to its persistence model.
func fromProductDomain(e *entity.Product) *model.ProductModel {
	if e == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          e.ID,
		CategoryID:  e.CategoryID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
	}
}

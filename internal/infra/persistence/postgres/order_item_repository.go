package postgres

import (
	"context"

	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/repository"
	"eshop/internal/errors"
	"eshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderItemRepository implements the domain OrderItemRepository interface using GORM.
type orderItemRepository struct {
	gormRepository[entity.OrderItem, model.OrderItemModel]
}

// NewOrderItemRepository is the constructor for orderItemRepository.
func NewOrderItemRepository(db *gorm.DB) repository.OrderItemRepository {
	return &orderItemRepository{
		gormRepository: gormRepository[entity.OrderItem, model.OrderItemModel]{
			db:         db,
			toDomain:   toOrderItemDomain,
			fromDomain: fromOrderItemDomain,
			preloads:   []string{"Product"},
			notFound:   domainerrors.ErrOrderItemNotFound,
			label:      "order item",
		},
	}
}

// FindUserOrderItem returns the order item only if its owning order belongs to
// the named user.
func (repo *orderItemRepository) FindUserOrderItem(ctx context.Context, id uuid.UUID, userName string) (*entity.OrderItem, error) {
	var m model.OrderItemModel
	err := repo.query(ctx).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("order_items.id = ? AND users.user_name = ?", id, userName).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderItemNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find user order item")
	}

	return toOrderItemDomain(&m), nil
}

// toOrderItemDomain maps the persistence model to a pure domain entity.
func toOrderItemDomain(m *model.OrderItemModel) *entity.OrderItem {
	if m == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Amount:    m.Amount,
		Product:   toProductDomain(m.Product),
	}
}

// fromOrderItemDomain maps the domain entity to its persistence model.
func fromOrderItemDomain(e *entity.OrderItem) *model.OrderItemModel {
	if e == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:        e.ID,
		OrderID:   e.OrderID,
		ProductID: e.ProductID,
		Amount:    e.Amount,
	}
}

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

// orderRepository implements the domain OrderRepository interface using GORM.
type orderRepository struct {
	gormRepository[entity.Order, model.OrderModel]
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		gormRepository: gormRepository[entity.Order, model.OrderModel]{
			db:            db,
			toDomain:      toOrderDomain,
			fromDomain:    fromOrderDomain,
			preloads:      []string{"Items", "Items.Product"},
			notFound:      domainerrors.ErrOrderNotFound,
			onFKViolation: domainerrors.ErrUserNotFound,
			label:         "order",
		},
	}
}

// FindByUserName returns all orders owned by the named user.
func (repo *orderRepository) FindByUserName(ctx context.Context, userName string) ([]*entity.Order, error) {
	var models []*model.OrderModel
	err := repo.query(ctx).
		Joins("JOIN users ON users.id = orders.user_id").
		Where("users.user_name = ?", userName).
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewPersistenceError(err, "failed to list orders by user")
	}

	result := make([]*entity.Order, 0, len(models))
	for _, m := range models {
		result = append(result, toOrderDomain(m))
	}

	return result, nil
}

// FindUserOrder returns the order only if it is owned by the named user.
// Orders belonging to someone else surface as not found, never as forbidden.
func (repo *orderRepository) FindUserOrder(ctx context.Context, id uuid.UUID, userName string) (*entity.Order, error) {
	var m model.OrderModel
	err := repo.query(ctx).
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.id = ? AND users.user_name = ?", id, userName).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewPersistenceError(err, "failed to find user order")
	}

	return toOrderDomain(&m), nil
}

// toOrderDomain maps the persistence model to a pure domain entity.
func toOrderDomain(m *model.OrderModel) *entity.Order {
	if m == nil {
		return nil
	}

	order := &entity.Order{
		ID:     m.ID,
		UserID: m.UserID,
		User:   toUserDomain(m.User),
	}
	for _, item := range m.Items {
		order.Items = append(order.Items, toOrderItemDomain(item))
	}

	return order
}

// fromOrderDomain maps the domain entity to its persistence model.
func fromOrderDomain(e *entity.Order) *model.OrderModel {
	if e == nil {
		return nil
	}

	return &model.OrderModel{
		ID:     e.ID,
		UserID: e.UserID,
	}
}

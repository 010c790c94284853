package usecase

import (
	"context"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderItemInput defines the data required to add a line to an order.
type CreateOrderItemInput struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Amount    int
}

// UpdateOrderItemInput defines the fields applied to an existing order item.
type UpdateOrderItemInput struct {
	Amount int
}

// OrderItemUsecase defines the interface for order-item business operations.
// Create, Update and Delete are scoped to the acting username: the owning
// order must belong to that user, otherwise the item surfaces as not found.
type OrderItemUsecase interface {
	ListOrderItems(ctx context.Context) ([]*entity.OrderItem, error)
	GetOrderItem(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error)
	CreateOrderItem(ctx context.Context, userName string, input CreateOrderItemInput) (*entity.OrderItem, error)
	UpdateOrderItem(ctx context.Context, id uuid.UUID, userName string, input UpdateOrderItemInput) (*entity.OrderItem, error)
	DeleteOrderItem(ctx context.Context, id uuid.UUID, userName string) error
}

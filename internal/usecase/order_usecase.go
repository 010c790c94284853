package usecase

import (
	"context"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderItemLine is one requested line of a new order.
type CreateOrderItemLine struct {
	ProductID uuid.UUID
	Amount    int
}

// CreateOrderInput defines the data required to place an order for the
// acting user. Items may be empty; lines can be added later through the
// order item operations.
type CreateOrderInput struct {
	Items []CreateOrderItemLine
}

// OrderUsecase defines the interface for order-related business operations.
// The admin operations see every order; the user-scoped ones only touch
// orders owned by the acting username.
type OrderUsecase interface {
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error

	CreateUserOrder(ctx context.Context, userName string, input CreateOrderInput) (*entity.Order, error)
	ListUserOrders(ctx context.Context, userName string) ([]*entity.Order, error)
	DeleteUserOrder(ctx context.Context, id uuid.UUID, userName string) error
}

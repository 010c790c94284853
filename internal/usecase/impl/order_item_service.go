package impl

import (
	"context"
	"log/slog"

	deliverycontext "eshop/internal/delivery/context"
	"eshop/internal/domain/entity"
	"eshop/internal/domain/repository"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderItemService implements the OrderItemUsecase interface.
type orderItemService struct {
	uow    repository.UnitOfWork
	repos  repository.Repositories
	logger *slog.Logger
}

// OrderItemServiceParams holds dependencies for orderItemService, injected by Fx.
type OrderItemServiceParams struct {
	fx.In

	UnitOfWork   repository.UnitOfWork
	Repositories repository.Repositories
	Logger       *slog.Logger
}

// NewOrderItemService is the constructor for orderItemService.
func NewOrderItemService(params OrderItemServiceParams) usecase.OrderItemUsecase {
	return &orderItemService{
		uow:    params.UnitOfWork,
		repos:  params.Repositories,
		logger: params.Logger,
	}
}

func (srv *orderItemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrderItems returns every order item. Admin view.
func (srv *orderItemService) ListOrderItems(ctx context.Context) ([]*entity.OrderItem, error) {
	items, err := srv.repos.OrderItems().GetAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list order items", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list order items")
	}

	return items, nil
}

// GetOrderItem returns one order item. Admin view.
func (srv *orderItemService) GetOrderItem(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error) {
	item, err := srv.repos.OrderItems().GetByID(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Failed to get order item", slog.Any("orderItemID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get order item")
	}

	return item, nil
}

// CreateOrderItem adds a line to one of the acting user's orders. The product
// must exist and the order must belong to that user.
func (srv *orderItemService) CreateOrderItem(ctx context.Context, userName string, input usecase.CreateOrderItemInput) (*entity.OrderItem, error) {
	var created *entity.OrderItem
	err := srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Products().GetByID(ctx, input.ProductID); err != nil {
			return err
		}
		if _, err := repos.Orders().FindUserOrder(ctx, input.OrderID, userName); err != nil {
			return err
		}

		item := &entity.OrderItem{
			OrderID:   input.OrderID,
			ProductID: input.ProductID,
			Amount:    input.Amount,
		}
		if err := repos.OrderItems().Add(ctx, item); err != nil {
			return err
		}

		created = item

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create order item",
			slog.Any("orderID", input.OrderID), slog.String("userName", userName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order item")
	}

	srv.log(ctx).Debug("Order item created", slog.Any("orderItemID", created.ID))

	return created, nil
}

// UpdateOrderItem changes the amount on a line of one of the acting user's
// orders.
func (srv *orderItemService) UpdateOrderItem(ctx context.Context, id uuid.UUID, userName string, input usecase.UpdateOrderItemInput) (*entity.OrderItem, error) {
	var updated *entity.OrderItem
	err := srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		item, err := repos.OrderItems().FindUserOrderItem(ctx, id, userName)
		if err != nil {
			return err
		}

		item.Amount = input.Amount
		item.Product = nil
		if err := repos.OrderItems().Update(ctx, item); err != nil {
			return err
		}

		updated = item

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update order item",
			slog.Any("orderItemID", id), slog.String("userName", userName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update order item")
	}

	return updated, nil
}

// DeleteOrderItem removes a line from one of the acting user's orders.
func (srv *orderItemService) DeleteOrderItem(ctx context.Context, id uuid.UUID, userName string) error {
	err := srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		item, err := repos.OrderItems().FindUserOrderItem(ctx, id, userName)
		if err != nil {
			return err
		}

		return repos.OrderItems().Delete(ctx, item)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete order item",
			slog.Any("orderItemID", id), slog.String("userName", userName), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete order item")
	}

	return nil
}

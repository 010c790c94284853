package impl

import (
	"context"
	"log/slog"

	deliverycontext "eshop/internal/delivery/context"
	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/domain/repository"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	uow    repository.UnitOfWork
	repos  repository.Repositories
	logger *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	UnitOfWork   repository.UnitOfWork
	Repositories repository.Repositories
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		uow:    params.UnitOfWork,
		repos:  params.Repositories,
		logger: params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns every order with its items. Admin view.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.repos.Orders().GetAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one order with its items. Admin view.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.repos.Orders().GetByID(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Failed to get order", slog.Any("orderID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// DeleteOrder removes any order by ID. Admin operation; the order's items are
// removed with it.
func (srv *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	err := srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		order, err := repos.Orders().GetByID(ctx, id)
		if err != nil {
			return err
		}

		return repos.Orders().Delete(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete order", slog.Any("orderID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// CreateUserOrder places an order for the acting user. An order carries at
// least one line, every line must reference an existing product, and the
// order and its lines commit together or not at all.
func (srv *orderService) CreateUserOrder(ctx context.Context, userName string, input usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("order must contain at least one item")
	}

	srv.log(ctx).Info("Placing order", slog.String("userName", userName), slog.Int("lines", len(input.Items)))

	var created *entity.Order
	err := srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		user, err := repos.Users().FindByUserName(ctx, userName)
		if err != nil {
			return err
		}

		order := &entity.Order{UserID: user.ID}
		if err := repos.Orders().Add(ctx, order); err != nil {
			return err
		}

		for _, line := range input.Items {
			if _, err := repos.Products().GetByID(ctx, line.ProductID); err != nil {
				return err
			}

			item := &entity.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Amount:    line.Amount,
			}
			if err := repos.OrderItems().Add(ctx, item); err != nil {
				return err
			}

			order.Items = append(order.Items, item)
		}

		created = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to place order", slog.String("userName", userName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.log(ctx).Debug("Order placed", slog.Any("orderID", created.ID))

	return created, nil
}

// ListUserOrders returns the orders owned by the acting user.
func (srv *orderService) ListUserOrders(ctx context.Context, userName string) ([]*entity.Order, error) {
	orders, err := srv.repos.Orders().FindByUserName(ctx, userName)
	if err != nil {
		srv.log(ctx).Error("Failed to list user orders", slog.String("userName", userName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// DeleteUserOrder removes an order only if it belongs to the acting user.
// Someone else's order surfaces as not found.
func (srv *orderService) DeleteUserOrder(ctx context.Context, id uuid.UUID, userName string) error {
	err := srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		order, err := repos.Orders().FindUserOrder(ctx, id, userName)
		if err != nil {
			return err
		}

		return repos.Orders().Delete(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete user order", slog.Any("orderID", id), slog.String("userName", userName), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete user order")
	}

	return nil
}

package impl

import (
	"context"
	"testing"

	"eshop/internal/domain/entity"
	domainerrors "eshop/internal/domain/errors"
	"eshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderItemServiceFixtures struct {
	service usecase.OrderItemUsecase
	repos   *fakeRepositories
}

func createTestOrderItemService(t *testing.T) *orderItemServiceFixtures {
	t.Helper()

	repos := newFakeRepositories()
	service := NewOrderItemService(OrderItemServiceParams{
		UnitOfWork:   &fakeUnitOfWork{repos: repos},
		Repositories: repos,
		Logger:       testLogger(),
	})

	return &orderItemServiceFixtures{service: service, repos: repos}
}

func TestOrderItemService_CreateOrderItem_Success(t *testing.T) {
	f := createTestOrderItemService(t)

	orderID := uuid.New()
	productID := uuid.New()

	f.repos.products.On("GetByID", mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	f.repos.orders.On("FindUserOrder", mock.Anything, orderID, "alice").Return(&entity.Order{ID: orderID}, nil)
	f.repos.orderItems.On("Add", mock.Anything, mock.MatchedBy(func(i *entity.OrderItem) bool {
		return i.OrderID == orderID && i.ProductID == productID && i.Amount == 2
	})).Return(nil)

	item, err := f.service.CreateOrderItem(context.Background(), "alice", usecase.CreateOrderItemInput{
		OrderID:   orderID,
		ProductID: productID,
		Amount:    2,
	})

	require.NoError(t, err)
	assert.Equal(t, orderID, item.OrderID)
	assert.Equal(t, 2, item.Amount)
	f.repos.orderItems.AssertExpectations(t)
}

func TestOrderItemService_CreateOrderItem_OrderNotOwned(t *testing.T) {
	f := createTestOrderItemService(t)

	orderID := uuid.New()
	productID := uuid.New()

	f.repos.products.On("GetByID", mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	f.repos.orders.On("FindUserOrder", mock.Anything, orderID, "alice").Return(nil, domainerrors.ErrOrderNotFound)

	item, err := f.service.CreateOrderItem(context.Background(), "alice", usecase.CreateOrderItemInput{
		OrderID:   orderID,
		ProductID: productID,
		Amount:    2,
	})

	require.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	f.repos.orderItems.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestOrderItemService_UpdateOrderItem_Success(t *testing.T) {
	f := createTestOrderItemService(t)

	id := uuid.New()
	existing := &entity.OrderItem{ID: id, Amount: 1, Product: &entity.Product{ID: uuid.New()}}
	f.repos.orderItems.On("FindUserOrderItem", mock.Anything, id, "alice").Return(existing, nil)
	f.repos.orderItems.On("Update", mock.Anything, mock.MatchedBy(func(i *entity.OrderItem) bool {
		return i.ID == id && i.Amount == 5 && i.Product == nil
	})).Return(nil)

	item, err := f.service.UpdateOrderItem(context.Background(), id, "alice", usecase.UpdateOrderItemInput{Amount: 5})

	require.NoError(t, err)
	assert.Equal(t, 5, item.Amount)
	f.repos.orderItems.AssertExpectations(t)
}

func TestOrderItemService_UpdateOrderItem_NotOwned(t *testing.T) {
	f := createTestOrderItemService(t)

	id := uuid.New()
	f.repos.orderItems.On("FindUserOrderItem", mock.Anything, id, "alice").Return(nil, domainerrors.ErrOrderItemNotFound)

	item, err := f.service.UpdateOrderItem(context.Background(), id, "alice", usecase.UpdateOrderItemInput{Amount: 5})

	require.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderItemNotFound))
	f.repos.orderItems.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderItemService_DeleteOrderItem_Success(t *testing.T) {
	f := createTestOrderItemService(t)

	id := uuid.New()
	existing := &entity.OrderItem{ID: id}
	f.repos.orderItems.On("FindUserOrderItem", mock.Anything, id, "alice").Return(existing, nil)
	f.repos.orderItems.On("Delete", mock.Anything, existing).Return(nil)

	err := f.service.DeleteOrderItem(context.Background(), id, "alice")

	require.NoError(t, err)
	f.repos.orderItems.AssertExpectations(t)
}

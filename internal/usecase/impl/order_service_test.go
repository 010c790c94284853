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

type orderServiceFixtures struct {
	service usecase.OrderUsecase
	repos   *fakeRepositories
}

func createTestOrderService(t *testing.T) *orderServiceFixtures {
	t.Helper()

	repos := newFakeRepositories()
	service := NewOrderService(OrderServiceParams{
		UnitOfWork:   &fakeUnitOfWork{repos: repos},
		Repositories: repos,
		Logger:       testLogger(),
	})

	return &orderServiceFixtures{service: service, repos: repos}
}

func TestOrderService_CreateUserOrder_Success(t *testing.T) {
	f := createTestOrderService(t)

	user := &entity.User{ID: uuid.New(), UserName: "alice"}
	productID := uuid.New()

	f.repos.users.On("FindByUserName", mock.Anything, "alice").Return(user, nil)
	f.repos.orders.On("Add", mock.Anything, mock.MatchedBy(func(o *entity.Order) bool {
		return o.UserID == user.ID
	})).Return(nil)
	f.repos.products.On("GetByID", mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	f.repos.orderItems.On("Add", mock.Anything, mock.MatchedBy(func(i *entity.OrderItem) bool {
		return i.ProductID == productID && i.Amount == 3
	})).Return(nil)

	order, err := f.service.CreateUserOrder(context.Background(), "alice", usecase.CreateOrderInput{
		Items: []usecase.CreateOrderItemLine{{ProductID: productID, Amount: 3}},
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, order.UserID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, productID, order.Items[0].ProductID)
	f.repos.orders.AssertExpectations(t)
	f.repos.orderItems.AssertExpectations(t)
}

func TestOrderService_CreateUserOrder_NoItems(t *testing.T) {
	f := createTestOrderService(t)

	order, err := f.service.CreateUserOrder(context.Background(), "alice", usecase.CreateOrderInput{})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	f.repos.users.AssertNotCalled(t, "FindByUserName", mock.Anything, mock.Anything)
	f.repos.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestOrderService_CreateUserOrder_UnknownProduct(t *testing.T) {
	f := createTestOrderService(t)

	user := &entity.User{ID: uuid.New(), UserName: "alice"}
	productID := uuid.New()

	f.repos.users.On("FindByUserName", mock.Anything, "alice").Return(user, nil)
	f.repos.orders.On("Add", mock.Anything, mock.Anything).Return(nil)
	f.repos.products.On("GetByID", mock.Anything, productID).Return(nil, domainerrors.ErrProductNotFound)

	order, err := f.service.CreateUserOrder(context.Background(), "alice", usecase.CreateOrderInput{
		Items: []usecase.CreateOrderItemLine{{ProductID: productID, Amount: 1}},
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	f.repos.orderItems.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestOrderService_ListUserOrders_Success(t *testing.T) {
	f := createTestOrderService(t)

	expected := []*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}
	f.repos.orders.On("FindByUserName", mock.Anything, "alice").Return(expected, nil)

	orders, err := f.service.ListUserOrders(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderService_DeleteUserOrder_NotOwned(t *testing.T) {
	f := createTestOrderService(t)

	id := uuid.New()
	f.repos.orders.On("FindUserOrder", mock.Anything, id, "alice").Return(nil, domainerrors.ErrOrderNotFound)

	err := f.service.DeleteUserOrder(context.Background(), id, "alice")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	f.repos.orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestOrderService_DeleteUserOrder_Success(t *testing.T) {
	f := createTestOrderService(t)

	id := uuid.New()
	order := &entity.Order{ID: id}
	f.repos.orders.On("FindUserOrder", mock.Anything, id, "alice").Return(order, nil)
	f.repos.orders.On("Delete", mock.Anything, order).Return(nil)

	err := f.service.DeleteUserOrder(context.Background(), id, "alice")

	require.NoError(t, err)
	f.repos.orders.AssertExpectations(t)
}

func TestOrderService_DeleteOrder_Success(t *testing.T) {
	f := createTestOrderService(t)

	id := uuid.New()
	order := &entity.Order{ID: id}
	f.repos.orders.On("GetByID", mock.Anything, id).Return(order, nil)
	f.repos.orders.On("Delete", mock.Anything, order).Return(nil)

	err := f.service.DeleteOrder(context.Background(), id)

	require.NoError(t, err)
	f.repos.orders.AssertExpectations(t)
}

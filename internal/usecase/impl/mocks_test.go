package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"eshop/internal/domain/entity"
	"eshop/internal/domain/repository"
	"eshop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-written test doubles for the repository and service interfaces.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUnitOfWork runs the callback against a fixed Repositories instance,
// standing in for a real transaction.
type fakeUnitOfWork struct {
	repos repository.Repositories
	err   error
}

func (u *fakeUnitOfWork) Execute(_ context.Context, fn func(repos repository.Repositories) error) error {
	if u.err != nil {
		return u.err
	}

	return fn(u.repos)
}

// fakeRepositories hands out the mock repositories.
type fakeRepositories struct {
	categories *mockCategoryRepository
	products   *mockProductRepository
	orders     *mockOrderRepository
	orderItems *mockOrderItemRepository
	users      *mockUserRepository
	roles      *mockRoleRepository
}

func newFakeRepositories() *fakeRepositories {
	return &fakeRepositories{
		categories: &mockCategoryRepository{},
		products:   &mockProductRepository{},
		orders:     &mockOrderRepository{},
		orderItems: &mockOrderItemRepository{},
		users:      &mockUserRepository{},
		roles:      &mockRoleRepository{},
	}
}

func (f *fakeRepositories) Categories() repository.CategoryRepository { return f.categories }
func (f *fakeRepositories) Products() repository.ProductRepository    { return f.products }
func (f *fakeRepositories) Orders() repository.OrderRepository        { return f.orders }
func (f *fakeRepositories) OrderItems() repository.OrderItemRepository {
	return f.orderItems
}
func (f *fakeRepositories) Users() repository.UserRepository { return f.users }
func (f *fakeRepositories) Roles() repository.RoleRepository { return f.roles }

type mockCategoryRepository struct{ mock.Mock }

func (m *mockCategoryRepository) GetAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)

	if v, ok := args.Get(0).([]*entity.Category); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)

	if v, ok := args.Get(0).(*entity.Category); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCategoryRepository) Add(ctx context.Context, item *entity.Category) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockCategoryRepository) Update(ctx context.Context, item *entity.Category) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, item *entity.Category) error {
	return m.Called(ctx, item).Error(0)
}

type mockProductRepository struct{ mock.Mock }

func (m *mockProductRepository) GetAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)

	if v, ok := args.Get(0).([]*entity.Product); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)

	if v, ok := args.Get(0).(*entity.Product); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) FindByFilter(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, filter)

	if v, ok := args.Get(0).([]*entity.Product); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) Add(ctx context.Context, item *entity.Product) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockProductRepository) Update(ctx context.Context, item *entity.Product) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, item *entity.Product) error {
	return m.Called(ctx, item).Error(0)
}

type mockOrderRepository struct{ mock.Mock }

func (m *mockOrderRepository) GetAll(ctx context.Context) ([]*entity.Order, error) {
	args := m.Called(ctx)

	if v, ok := args.Get(0).([]*entity.Order); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)

	if v, ok := args.Get(0).(*entity.Order); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) FindByUserName(ctx context.Context, userName string) ([]*entity.Order, error) {
	args := m.Called(ctx, userName)

	if v, ok := args.Get(0).([]*entity.Order); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) FindUserOrder(ctx context.Context, id uuid.UUID, userName string) (*entity.Order, error) {
	args := m.Called(ctx, id, userName)

	if v, ok := args.Get(0).(*entity.Order); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) Add(ctx context.Context, item *entity.Order) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockOrderRepository) Update(ctx context.Context, item *entity.Order) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockOrderRepository) Delete(ctx context.Context, item *entity.Order) error {
	return m.Called(ctx, item).Error(0)
}

type mockOrderItemRepository struct{ mock.Mock }

func (m *mockOrderItemRepository) GetAll(ctx context.Context) ([]*entity.OrderItem, error) {
	args := m.Called(ctx)

	if v, ok := args.Get(0).([]*entity.OrderItem); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error) {
	args := m.Called(ctx, id)

	if v, ok := args.Get(0).(*entity.OrderItem); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderItemRepository) FindUserOrderItem(ctx context.Context, id uuid.UUID, userName string) (*entity.OrderItem, error) {
	args := m.Called(ctx, id, userName)

	if v, ok := args.Get(0).(*entity.OrderItem); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderItemRepository) Add(ctx context.Context, item *entity.OrderItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockOrderItemRepository) Update(ctx context.Context, item *entity.OrderItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockOrderItemRepository) Delete(ctx context.Context, item *entity.OrderItem) error {
	return m.Called(ctx, item).Error(0)
}

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)

	if v, ok := args.Get(0).([]*entity.User); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)

	if v, ok := args.Get(0).(*entity.User); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByUserName(ctx context.Context, userName string) (*entity.User, error) {
	args := m.Called(ctx, userName)

	if v, ok := args.Get(0).(*entity.User); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Add(ctx context.Context, item *entity.User) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, item *entity.User) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, item *entity.User) error {
	return m.Called(ctx, item).Error(0)
}

type mockRoleRepository struct{ mock.Mock }

func (m *mockRoleRepository) GetAll(ctx context.Context) ([]*entity.Role, error) {
	args := m.Called(ctx)

	if v, ok := args.Get(0).([]*entity.Role); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRoleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	args := m.Called(ctx, id)

	if v, ok := args.Get(0).(*entity.Role); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)

	if v, ok := args.Get(0).(*entity.Role); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRoleRepository) FindByNameWithUsers(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)

	if v, ok := args.Get(0).(*entity.Role); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRoleRepository) Add(ctx context.Context, item *entity.Role) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockRoleRepository) Update(ctx context.Context, item *entity.Role) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockRoleRepository) Delete(ctx context.Context, item *entity.Role) error {
	return m.Called(ctx, item).Error(0)
}

type mockPasswordHasher struct{ mock.Mock }

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(hashed, password string) bool {
	return m.Called(hashed, password).Bool(0)
}

func (m *mockPasswordHasher) ValidateStrength(password string) error {
	return m.Called(password).Error(0)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) GenerateAccessToken(userName, roleName string) (string, time.Time, error) {
	args := m.Called(userName, roleName)

	expiresAt, _ := args.Get(1).(time.Time)

	return args.String(0), expiresAt, args.Error(2)
}

func (m *mockTokenService) ValidateToken(token string) (*service.Claims, error) {
	args := m.Called(token)

	if v, ok := args.Get(0).(*service.Claims); ok {
		return v, args.Error(1)
	}

	return nil, args.Error(1)
}

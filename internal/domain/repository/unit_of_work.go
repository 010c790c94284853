package repository

import "context"

// UnitOfWork groups repository operations into one atomic persistence commit.
// This allows the use case layer to run multi-entity writes without depending
// on a specific DB driver like GORM.
type UnitOfWork interface {
	// Execute runs fn within a single database transaction. If fn returns an
	// error the transaction is rolled back, otherwise it is committed. Every
	// repository obtained from the Repositories factory inside fn is bound to
	// that same transaction, so a multi-entity operation either commits as a
	// whole or not at all.
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}

// Repositories hands out repository instances bound to one persistence
// session. Obtained from UnitOfWork.Execute for transactional work; the
// non-transactional equivalents are injected directly for single reads.
type Repositories interface {
	Categories() CategoryRepository
	Products() ProductRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Users() UserRepository
	Roles() RoleRepository
}

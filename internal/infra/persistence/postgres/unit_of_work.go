package postgres

import (
	"context"

	"eshop/internal/domain/repository"
	"eshop/internal/errors"

	"gorm.io/gorm"
)

// gormUnitOfWork implements the domain UnitOfWork interface using GORM
// transactions.
type gormUnitOfWork struct {
	db *gorm.DB
}

// gormRepositories hands out repository instances bound to one *gorm.DB,
// which is either the shared connection or a single transaction.
type gormRepositories struct {
	db *gorm.DB
}

// NewUnitOfWork is the constructor for gormUnitOfWork.
func NewUnitOfWork(db *gorm.DB) repository.UnitOfWork {
	return &gormUnitOfWork{db: db}
}

// NewRepositories creates a repository factory bound to the shared connection,
// for single-statement work that needs no transaction.
func NewRepositories(db *gorm.DB) repository.Repositories {
	return &gormRepositories{db: db}
}

// Execute runs the given function within a single database transaction.
// A panic inside fn rolls the transaction back before propagating.
func (u *gormUnitOfWork) Execute(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositories{db: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v (original error below)", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

func (r *gormRepositories) Categories() repository.CategoryRepository {
	return NewCategoryRepository(r.db)
}

func (r *gormRepositories) Products() repository.ProductRepository {
	return NewProductRepository(r.db)
}

func (r *gormRepositories) Orders() repository.OrderRepository {
	return NewOrderRepository(r.db)
}

func (r *gormRepositories) OrderItems() repository.OrderItemRepository {
	return NewOrderItemRepository(r.db)
}

func (r *gormRepositories) Users() repository.UserRepository {
	return NewUserRepository(r.db)
}

func (r *gormRepositories) Roles() repository.RoleRepository {
	return NewRoleRepository(r.db)
}

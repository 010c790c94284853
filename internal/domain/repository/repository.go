// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and
// the infrastructure layer.
package repository

import (
	"context"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
)

// Repository exposes the operations shared by every entity type. Absent rows
// surface as the entity's domain not-found error, never as a nil success.
type Repository[E any] interface {
	// GetAll retrieves every persisted entity of type E.
	GetAll(ctx context.Context) ([]*E, error)

	// GetByID retrieves a single entity by its unique ID.
	GetByID(ctx context.Context, id uuid.UUID) (*E, error)

	// Add persists a new entity and writes store-generated fields (ID,
	// timestamps) back onto it.
	Add(ctx context.Context, item *E) error

	// Update persists the current state of an already-loaded entity.
	Update(ctx context.Context, item *E) error

	// Delete removes the entity identified by item's ID.
	Delete(ctx context.Context, item *E) error
}

// CategoryRepository persists categories. GetByID loads the category's
// products for detailed reads.
type CategoryRepository interface {
	Repository[entity.Category]
}

// ProductFilter is a conjunction of optional constraints. Zero-valued fields
// impose no constraint.
type ProductFilter struct {
	NameContains        string
	DescriptionContains string
	MinPrice            float64
	MaxPrice            float64
	CategoryID          uuid.UUID
}

// ProductRepository persists products.
type ProductRepository interface {
	Repository[entity.Product]

	// FindByFilter returns the products matching every present clause of the
	// filter. An empty filter returns all products.
	FindByFilter(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}

// OrderRepository persists orders together with their items.
type OrderRepository interface {
	Repository[entity.Order]

	// FindByUserName returns all orders owned by the named user.
	FindByUserName(ctx context.Context, userName string) ([]*entity.Order, error)

	// FindUserOrder returns the order only if it is owned by the named user.
	FindUserOrder(ctx context.Context, id uuid.UUID, userName string) (*entity.Order, error)
}

// OrderItemRepository persists order items.
type OrderItemRepository interface {
	Repository[entity.OrderItem]

	// FindUserOrderItem returns the order item only if its owning order
	// belongs to the named user.
	FindUserOrderItem(ctx context.Context, id uuid.UUID, userName string) (*entity.OrderItem, error)
}

// UserRepository persists users. Reads load the owning role.
type UserRepository interface {
	Repository[entity.User]

	// FindByUserName retrieves a single user by the unique username.
	FindByUserName(ctx context.Context, userName string) (*entity.User, error)
}

// RoleRepository persists roles.
type RoleRepository interface {
	Repository[entity.Role]

	// FindByName retrieves a role by its unique name. The user association
	// stays unloaded.
	FindByName(ctx context.Context, name string) (*entity.Role, error)

	// FindByNameWithUsers retrieves a role by its unique name together with
	// every user holding it.
	FindByNameWithUsers(ctx context.Context, name string) (*entity.Role, error)
}

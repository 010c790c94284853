package usecase

import (
	"context"

	"eshop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	CategoryID  uuid.UUID
	Name        string
	Description string
	Price       float64
}

// UpdateProductInput defines the fields applied to an existing product.
type UpdateProductInput struct {
	CategoryID  uuid.UUID
	Name        string
	Description string
	Price       float64
}

// QueryProductsInput defines the optional filter clauses for product search.
// Zero-valued fields impose no constraint.
type QueryProductsInput struct {
	Name        string
	Description string
	MinPrice    float64
	MaxPrice    float64
	CategoryID  uuid.UUID
}

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	QueryProducts(ctx context.Context, input QueryProductsInput) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

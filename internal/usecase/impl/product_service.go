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

// productService implements the ProductUsecase interface.
type productService struct {
	uow    repository.UnitOfWork
	repos  repository.Repositories
	logger *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	UnitOfWork   repository.UnitOfWork
	Repositories repository.Repositories
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		uow:    params.UnitOfWork,
		repos:  params.Repositories,
		logger: params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns every product with its category.
func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.repos.Products().GetAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns one product with its category.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.repos.Products().GetByID(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Failed to get product", slog.Any("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// QueryProducts returns the products matching every present filter clause.
func (srv *productService) QueryProducts(ctx context.Context, input usecase.QueryProductsInput) ([]*entity.Product, error) {
	filter := repository.ProductFilter{
		NameContains:        input.Name,
		DescriptionContains: input.Description,
		MinPrice:            input.MinPrice,
		MaxPrice:            input.MaxPrice,
		CategoryID:          input.CategoryID,
	}

	products, err := srv.repos.Products().FindByFilter(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to query products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to query products")
	}

	return products, nil
}

// CreateProduct persists a new product after checking its category exists.
func (srv *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	var created *entity.Product
	err := srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Categories().GetByID(ctx, input.CategoryID); err != nil {
			return err
		}

		product := &entity.Product{
			CategoryID:  input.CategoryID,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
		}
		if err := repos.Products().Add(ctx, product); err != nil {
			return err
		}

		created = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", created.ID))

	return created, nil
}

// UpdateProduct loads the product, checks the (possibly new) category exists,
// applies the changed fields and saves it back.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	var updated *entity.Product
	err := srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		product, err := repos.Products().GetByID(ctx, id)
		if err != nil {
			return err
		}

		if _, err := repos.Categories().GetByID(ctx, input.CategoryID); err != nil {
			return err
		}

		product.CategoryID = input.CategoryID
		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.Category = nil
		if err := repos.Products().Update(ctx, product); err != nil {
			return err
		}

		updated = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Any("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return updated, nil
}

// DeleteProduct removes the product.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		product, err := repos.Products().GetByID(ctx, id)
		if err != nil {
			return err
		}

		return repos.Products().Delete(ctx, product)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete product", slog.Any("productID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

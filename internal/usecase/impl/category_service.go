// Package impl contains the implementation of the application's business logic.
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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	uow    repository.UnitOfWork
	repos  repository.Repositories
	logger *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	UnitOfWork   repository.UnitOfWork
	Repositories repository.Repositories
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		uow:    params.UnitOfWork,
		repos:  params.Repositories,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns every category.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.repos.Categories().GetAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategory returns one category with its products.
func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.repos.Categories().GetByID(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Failed to get category", slog.Any("categoryID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get category")
	}

	return category, nil
}

// CreateCategory persists a new category.
func (srv *categoryService) CreateCategory(ctx context.Context, input usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{Name: input.Name}

	if err := srv.repos.Categories().Add(ctx, category); err != nil {
		srv.log(ctx).Error("Failed to create category", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Debug("Category created", slog.Any("categoryID", category.ID))

	return category, nil
}

// UpdateCategory loads the category, applies the changed fields and saves it
// back, all inside one transaction.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input usecase.UpdateCategoryInput) (*entity.Category, error) {
	var updated *entity.Category
	err := srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		category, err := repos.Categories().GetByID(ctx, id)
		if err != nil {
			return err
		}

		category.Name = input.Name
		if err := repos.Categories().Update(ctx, category); err != nil {
			return err
		}

		updated = category

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update category", slog.Any("categoryID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update category")
	}

	return updated, nil
}

// DeleteCategory removes the category. Its products go with it.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := srv.uow.Execute(ctx, func(repos repository.Repositories) error {
		category, err := repos.Categories().GetByID(ctx, id)
		if err != nil {
			return err
		}

		return repos.Categories().Delete(ctx, category)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete category", slog.Any("categoryID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

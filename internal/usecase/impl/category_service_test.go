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

type categoryServiceFixtures struct {
	service usecase.CategoryUsecase
	repos   *fakeRepositories
}

func createTestCategoryService(t *testing.T) *categoryServiceFixtures {
	t.Helper()

	repos := newFakeRepositories()
	service := NewCategoryService(CategoryServiceParams{
		UnitOfWork:   &fakeUnitOfWork{repos: repos},
		Repositories: repos,
		Logger:       testLogger(),
	})

	return &categoryServiceFixtures{service: service, repos: repos}
}

func TestCategoryService_ListCategories_Success(t *testing.T) {
	f := createTestCategoryService(t)

	expected := []*entity.Category{
		{ID: uuid.New(), Name: "Books"},
		{ID: uuid.New(), Name: "Games"},
	}
	f.repos.categories.On("GetAll", mock.Anything).Return(expected, nil)

	categories, err := f.service.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, categories)
	f.repos.categories.AssertExpectations(t)
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	f := createTestCategoryService(t)

	id := uuid.New()
	f.repos.categories.On("GetByID", mock.Anything, id).Return(nil, domainerrors.ErrCategoryNotFound)

	category, err := f.service.GetCategory(context.Background(), id)

	require.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	f := createTestCategoryService(t)

	f.repos.categories.On("Add", mock.Anything, mock.MatchedBy(func(c *entity.Category) bool {
		return c.Name == "Books"
	})).Return(nil)

	category, err := f.service.CreateCategory(context.Background(), usecase.CreateCategoryInput{Name: "Books"})

	require.NoError(t, err)
	assert.Equal(t, "Books", category.Name)
	f.repos.categories.AssertExpectations(t)
}

func TestCategoryService_UpdateCategory_MergesChanges(t *testing.T) {
	f := createTestCategoryService(t)

	id := uuid.New()
	existing := &entity.Category{ID: id, Name: "Books"}
	f.repos.categories.On("GetByID", mock.Anything, id).Return(existing, nil)
	f.repos.categories.On("Update", mock.Anything, mock.MatchedBy(func(c *entity.Category) bool {
		return c.ID == id && c.Name == "Comics"
	})).Return(nil)

	category, err := f.service.UpdateCategory(context.Background(), id, usecase.UpdateCategoryInput{Name: "Comics"})

	require.NoError(t, err)
	assert.Equal(t, "Comics", category.Name)
	f.repos.categories.AssertExpectations(t)
}

func TestCategoryService_UpdateCategory_NotFound(t *testing.T) {
	f := createTestCategoryService(t)

	id := uuid.New()
	f.repos.categories.On("GetByID", mock.Anything, id).Return(nil, domainerrors.ErrCategoryNotFound)

	category, err := f.service.UpdateCategory(context.Background(), id, usecase.UpdateCategoryInput{Name: "Comics"})

	require.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	f.repos.categories.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCategoryService_DeleteCategory_Success(t *testing.T) {
	f := createTestCategoryService(t)

	id := uuid.New()
	existing := &entity.Category{ID: id, Name: "Books"}
	f.repos.categories.On("GetByID", mock.Anything, id).Return(existing, nil)
	f.repos.categories.On("Delete", mock.Anything, existing).Return(nil)

	err := f.service.DeleteCategory(context.Background(), id)

	require.NoError(t, err)
	f.repos.categories.AssertExpectations(t)
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	f := createTestCategoryService(t)

	id := uuid.New()
	f.repos.categories.On("GetByID", mock.Anything, id).Return(nil, domainerrors.ErrCategoryNotFound)

	err := f.service.DeleteCategory(context.Background(), id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

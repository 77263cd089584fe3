package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CatalogProductRepoMock struct{ mock.Mock }

func (m *CatalogProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *CatalogProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CatalogProductRepoMock) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]string)
	return cats, args.Error(1)
}

func (m *CatalogProductRepoMock) Create(ctx context.Context, p model.Product) error {
	panic("not used in CatalogUsecase tests")
}

// フィルタはそのままクエリへ渡す
func TestCatalogUsecase_ListProducts_PassesFilters(t *testing.T) {
	ctx := context.Background()

	pRepo := new(CatalogProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	q := repo.ProductListQuery{Category: "Medicines", Search: "vitamin"}
	pRepo.On("List", mock.Anything, q).Return([]model.Product{
		{ID: "p1", Name: "Vitamin C 1000mg", Category: "Medicines"},
	}, nil)

	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{Category: "Medicines", Search: "vitamin"})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))

	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_GetProduct_NotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(CatalogProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, "missing").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(ctx, "missing")
	assertErrContains(t, err, "product not found")
}

func TestCatalogUsecase_GetProduct_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(CatalogProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, "p1").
		Return(model.Product{ID: "p1", Name: "Paracetamol 500mg", Price: 25.00}, nil)

	p, err := uc.GetProduct(ctx, "p1")
	assert.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg", p.Name)
}

func TestCatalogUsecase_ListCategories(t *testing.T) {
	ctx := context.Background()

	pRepo := new(CatalogProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("ListCategories", mock.Anything).
		Return([]string{"Medicines", "Personal Care"}, nil)

	out, err := uc.ListCategories(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Medicines", "Personal Care"}, out.Categories)
}

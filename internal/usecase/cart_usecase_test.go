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

// =====================
// Mocks（衝突回避の命名）
// =====================

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) FindByUserID(ctx context.Context, userID string) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) GetOrCreateByUserID(ctx context.Context, userID string) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) ListItems(ctx context.Context, cartID string) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartRepoMock) AddOrIncrementItem(ctx context.Context, cartID string, productID string, qty int64) error {
	args := m.Called(ctx, cartID, productID, qty)
	return args.Error(0)
}

func (m *CartRepoMock) SetItemQuantity(ctx context.Context, cartID string, productID string, qty int64) error {
	args := m.Called(ctx, cartID, productID, qty)
	return args.Error(0)
}

func (m *CartRepoMock) RemoveItem(ctx context.Context, cartID string, productID string) error {
	args := m.Called(ctx, cartID, productID)
	return args.Error(0)
}

func (m *CartRepoMock) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type CartProductRepoMock struct{ mock.Mock }

func (m *CartProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CartProductRepoMock) ListCategories(ctx context.Context) ([]string, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) Create(ctx context.Context, p model.Product) error {
	panic("not used in CartUsecase tests")
}

// =====================
// GetCart
// =====================

// カートが無くても空カートで返す（エラーにしない）
func TestCartUsecase_GetCart_NoCart_ReturnsEmpty(t *testing.T) {
	ctx := context.Background()

	carts := new(CartRepoMock)
	products := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(carts, products)

	carts.On("FindByUserID", mock.Anything, "u1").Return(model.Cart{}, repo.ErrNotFound)

	out, err := uc.GetCart(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))
	assert.Equal(t, float64(0), out.Total)
}

// 小計は「現在の商品価格 × 数量」。消えた商品の行はスキップして数える。
func TestCartUsecase_GetCart_CurrentPrices_SkipsMissing(t *testing.T) {
	ctx := context.Background()

	carts := new(CartRepoMock)
	products := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(carts, products)

	carts.On("FindByUserID", mock.Anything, "u1").Return(model.Cart{ID: "c1", UserID: "u1"}, nil)
	carts.On("ListItems", mock.Anything, "c1").Return([]model.CartItem{
		{CartID: "c1", ProductID: "p1", Quantity: 2},
		{CartID: "c1", ProductID: "gone", Quantity: 5},
	}, nil)

	products.On("FindByID", mock.Anything, "p1").
		Return(model.Product{ID: "p1", Name: "Paracetamol 500mg", Price: 25.00}, nil)
	products.On("FindByID", mock.Anything, "gone").
		Return(model.Product{}, repo.ErrNotFound)

	out, err := uc.GetCart(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, float64(50.00), out.Items[0].Subtotal)
	assert.Equal(t, float64(50.00), out.Total)
	assert.Equal(t, 1, out.SkippedLines)
}

// =====================
// AddItem
// =====================

func TestCartUsecase_AddItem_ProductNotFound(t *testing.T) {
	ctx := context.Background()

	carts := new(CartRepoMock)
	products := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(carts, products)

	products.On("FindByID", mock.Anything, "missing").Return(model.Product{}, repo.ErrNotFound)

	err := uc.AddItem(ctx, "u1", usecase.AddItemInput{ProductID: "missing", Quantity: 1})
	assertErrContains(t, err, "product not found")
	carts.AssertNotCalled(t, "AddOrIncrementItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddItem_InvalidQuantity(t *testing.T) {
	uc := usecase.NewCartUsecase(new(CartRepoMock), new(CartProductRepoMock))

	err := uc.AddItem(context.Background(), "u1", usecase.AddItemInput{ProductID: "p1", Quantity: -1})
	assertErrContains(t, err, "invalid quantity")
}

// カートは初回追加時に遅延作成され、同一商品は加算される
func TestCartUsecase_AddItem_MergesByProduct(t *testing.T) {
	ctx := context.Background()

	carts := new(CartRepoMock)
	products := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(carts, products)

	products.On("FindByID", mock.Anything, "p1").
		Return(model.Product{ID: "p1", Price: 25.00, Stock: 1}, nil)
	carts.On("GetOrCreateByUserID", mock.Anything, "u1").Return(model.Cart{ID: "c1", UserID: "u1"}, nil)
	//在庫を超える数量でも通す（在庫検証はスコープ外）
	carts.On("AddOrIncrementItem", mock.Anything, "c1", "p1", int64(3)).Return(nil)

	err := uc.AddItem(ctx, "u1", usecase.AddItemInput{ProductID: "p1", Quantity: 3})
	assert.NoError(t, err)

	carts.AssertExpectations(t)
}

// =====================
// UpdateItem
// =====================

func TestCartUsecase_UpdateItem_NoCart(t *testing.T) {
	ctx := context.Background()

	carts := new(CartRepoMock)
	uc := usecase.NewCartUsecase(carts, new(CartProductRepoMock))

	carts.On("FindByUserID", mock.Anything, "u1").Return(model.Cart{}, repo.ErrNotFound)

	err := uc.UpdateItem(ctx, "u1", usecase.UpdateItemInput{ProductID: "p1", Quantity: 2})
	assertErrContains(t, err, "cart not found")
}

// 0以下は削除。行が無くても成功（冪等）。
func TestCartUsecase_UpdateItem_ZeroRemoves(t *testing.T) {
	ctx := context.Background()

	carts := new(CartRepoMock)
	uc := usecase.NewCartUsecase(carts, new(CartProductRepoMock))

	carts.On("FindByUserID", mock.Anything, "u1").Return(model.Cart{ID: "c1"}, nil)
	carts.On("RemoveItem", mock.Anything, "c1", "p1").Return(nil)

	err := uc.UpdateItem(ctx, "u1", usecase.UpdateItemInput{ProductID: "p1", Quantity: 0})
	assert.NoError(t, err)

	//2回目（もう行が無い）も成功
	err = uc.UpdateItem(ctx, "u1", usecase.UpdateItemInput{ProductID: "p1", Quantity: 0})
	assert.NoError(t, err)

	carts.AssertNotCalled(t, "SetItemQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// 正の数は既存行の上書きだけ。無い商品に行は作らない（AddItemとの意図的な差）。
func TestCartUsecase_UpdateItem_PositiveSetsExistingOnly(t *testing.T) {
	ctx := context.Background()

	carts := new(CartRepoMock)
	uc := usecase.NewCartUsecase(carts, new(CartProductRepoMock))

	carts.On("FindByUserID", mock.Anything, "u1").Return(model.Cart{ID: "c1"}, nil)
	carts.On("SetItemQuantity", mock.Anything, "c1", "p1", int64(4)).Return(nil)

	err := uc.UpdateItem(ctx, "u1", usecase.UpdateItemInput{ProductID: "p1", Quantity: 4})
	assert.NoError(t, err)

	carts.AssertNotCalled(t, "AddOrIncrementItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	carts.AssertExpectations(t)
}

// =====================
// ClearCart
// =====================

func TestCartUsecase_ClearCart_AbsentIsOK(t *testing.T) {
	ctx := context.Background()

	carts := new(CartRepoMock)
	uc := usecase.NewCartUsecase(carts, new(CartProductRepoMock))

	carts.On("DeleteByUserID", mock.Anything, "u1").Return(nil)

	assert.NoError(t, uc.ClearCart(ctx, "u1"))
	carts.AssertExpectations(t)
}

package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// カート表示の1行。subtotalは「現在の商品価格 × 数量」。
// 注文のスナップショットと違い、カートは常に最新価格で見せる。
type CartLine struct {
	Product  model.Product `json:"product"`
	Quantity int64         `json:"quantity"`
	Subtotal float64       `json:"subtotal"`
}

type CartResponse struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`

	// 参照先の商品が消えていてスキップした行数。レスポンスには出さずログ用。
	SkippedLines int `json:"-"`
}

type AddItemInput struct {
	ProductID string
	Quantity  int64
}

type UpdateItemInput struct {
	ProductID string
	Quantity  int64
}

// GetCart はカート取得。カートが無い場合も空カートとして返す（エラーにしない）。
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartResponse, error) {
	if userID == "" {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{Items: []CartLine{}, Total: 0}, nil
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// AddItem はカートに追加（同一商品は数量加算）。カートは初回追加時に作る。
func (u *CartUsecase) AddItem(ctx context.Context, userID string, in AddItemInput) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 商品チェック。在庫数の検証はしない（在庫超過の数量も通す）。
	if _, err := u.productRepo.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.AddOrIncrementItem(ctx, cart.ID, in.ProductID, in.Quantity); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// UpdateItem は数量変更。
// quantityが0以下なら明細を削除（無くても成功）。
// 正の数はカートに既にある商品だけ上書きする。無い商品には行を作らない。
func (u *CartUsecase) UpdateItem(ctx context.Context, userID string, in UpdateItemInput) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	cart, err := u.cartRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Quantity <= 0 {
		if err := u.cartRepo.RemoveItem(ctx, cart.ID, in.ProductID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	}

	if err := u.cartRepo.SetItemQuantity(ctx, cart.ID, in.ProductID, in.Quantity); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// ClearCart はカートを丸ごと削除。無くてもエラーにしない。
func (u *CartUsecase) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// cartIDの明細をまとめてCartResponseを作る。
// 参照先の商品が消えていた行は黙ってスキップし、件数だけ数える。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID string) (CartResponse, error) {
	items, err := u.cartRepo.ListItems(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lines := make([]CartLine, 0, len(items))
	var total float64 = 0
	skipped := 0

	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			skipped++
			continue
		}
		if err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		subtotal := p.Price * float64(it.Quantity)
		lines = append(lines, CartLine{
			Product:  p,
			Quantity: it.Quantity,
			Subtotal: subtotal,
		})
		total += subtotal
	}

	return CartResponse{Items: lines, Total: total, SkippedLines: skipped}, nil
}

package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	// ユーザーのカートを取得。無ければErrNotFound。
	FindByUserID(ctx context.Context, userID string) (model.Cart, error)
	// カートを取得、無ければ作成（初回追加時の遅延作成）。
	GetOrCreateByUserID(ctx context.Context, userID string) (model.Cart, error)
	ListItems(ctx context.Context, cartID string) ([]model.CartItem, error)
	// 同一商品は数量加算
	AddOrIncrementItem(ctx context.Context, cartID string, productID string, qty int64) error
	// 既存明細のみ数量を上書き。明細が無ければ何もしない。
	SetItemQuantity(ctx context.Context, cartID string, productID string, qty int64) error
	// 明細削除。無くてもエラーにしない。
	RemoveItem(ctx context.Context, cartID string, productID string) error
	// カートと明細を丸ごと削除。無くてもエラーにしない。
	DeleteByUserID(ctx context.Context, userID string) error
}

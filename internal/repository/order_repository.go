package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) error
	// 新しい順
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
	// 所有者スコープで検索。他人の注文IDは存在しない扱い（ErrNotFound）。
	FindByIDAndUser(ctx context.Context, orderID string, userID string) (model.Order, error)
}

type OrderProductRepository interface {
	CreateBulk(ctx context.Context, orderID string, items []model.OrderProduct) error
	ListByOrderID(ctx context.Context, orderID string) ([]model.OrderProduct, error)
}

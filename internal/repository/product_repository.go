package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索。categoryは完全一致、searchは名前の部分一致（大文字小文字を無視）。
type ProductListQuery struct {
	Category string
	Search   string
	Limit    int
}

// 商品の永続化だけを約束。APIは読み取りのみ、Createはカタログローダー用。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	ListCategories(ctx context.Context) ([]string, error)

	Create(ctx context.Context, p model.Product) error
}

package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) error {
	return r.db.WithContext(ctx).Create(&order).Error
}

// ユーザーの注文を新しい順で取得
func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error

	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

// 所有者スコープで1件取得。他人の注文はErrNotFound。
func (r *OrderGormRepository) FindByIDAndUser(ctx context.Context, orderID string, userID string) (model.Order, error) {
	var order model.Order

	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

type OrderProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderProductGormRepository(db *gorm.DB) *OrderProductGormRepository {
	return &OrderProductGormRepository{db: db}
}

// 注文明細スナップショットを一括作成
func (r *OrderProductGormRepository) CreateBulk(ctx context.Context, orderID string, items []model.OrderProduct) error {
	if len(items) == 0 {
		return nil
	}

	for i := range items {
		items[i].OrderID = orderID
	}

	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *OrderProductGormRepository) ListByOrderID(ctx context.Context, orderID string) ([]model.OrderProduct, error) {
	var items []model.OrderProduct

	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&items).Error

	if err != nil {
		return []model.OrderProduct{}, err
	}
	return items, nil
}

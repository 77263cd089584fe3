package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type CreateOrderInput struct {
	PaymentMethod    string
	UPIID            string
	DeliveryAddress  string
	Phone            string
	PrescriptionData string
}

type CreateOrderOutput struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`

	// スナップショット作成時にスキップした行数（ログ用）
	SkippedLines int `json:"-"`
}

// 注文レスポンスは注文本体＋明細スナップショット
type OrderResponse struct {
	model.Order
	Products []model.OrderProduct `json:"products"`
}

// CreateOrder はカートを注文に変換する。
// スナップショット作成・注文保存・カート削除は1トランザクションで行い、
// 途中で失敗したら注文もカート削除も残らない。
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID string, in CreateOrderInput) (CreateOrderOutput, error) {
	if userID == "" {
		return CreateOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var out CreateOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.Carts().ListItems(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(items) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}

		// 現在の商品情報からスナップショットを作る。
		// 消えた商品の行はスキップ（GetCartと同じ扱い）。
		snapshots := make([]model.OrderProduct, 0, len(items))
		var total float64 = 0
		skipped := 0

		for _, it := range items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				skipped++
				continue
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			snapshots = append(snapshots, model.OrderProduct{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Quantity:  it.Quantity,
			})
			total += p.Price * float64(it.Quantity)
		}

		order := model.Order{
			ID:               uuid.NewString(),
			UserID:           userID,
			TotalAmount:      total,
			PaymentMethod:    in.PaymentMethod,
			UPIID:            in.UPIID,
			DeliveryAddress:  in.DeliveryAddress,
			Phone:            in.Phone,
			Status:           model.OrderStatusPending,
			PrescriptionData: in.PrescriptionData,
			CreatedAt:        time.Now(),
		}

		if err := r.Orders().Create(ctx, order); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.OrderProducts().CreateBulk(ctx, order.ID, snapshots); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//注文確定したカートは削除
		if err := r.Carts().DeleteByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = CreateOrderOutput{
			Message:      "Order placed successfully",
			OrderID:      order.ID,
			SkippedLines: skipped,
		}
		return nil
	})

	if err != nil {
		return CreateOrderOutput{}, err
	}
	return out, nil
}

// ListOrders はユーザーの注文を新しい順で返す
func (u *OrderUsecase) ListOrders(ctx context.Context, userID string) ([]OrderResponse, error) {
	if userID == "" {
		return []OrderResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []OrderResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderResponse, 0, len(orders))
		for _, o := range orders {
			products, err := r.OrderProducts().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, OrderResponse{Order: o, Products: products})
		}
		return nil
	})

	if err != nil {
		return []OrderResponse{}, err
	}
	return outs, nil
}

// GetOrder は所有者スコープで1件取得。
// 他人の注文IDは存在しないIDと区別がつかない（これ自体が認可）。
func (u *OrderUsecase) GetOrder(ctx context.Context, userID string, orderID string) (OrderResponse, error) {
	if userID == "" {
		return OrderResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID == "" {
		return OrderResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDAndUser(ctx, orderID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		products, err := r.OrderProducts().ListByOrderID(ctx, o.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderResponse{Order: o, Products: products}
		return nil
	})

	if err != nil {
		return OrderResponse{}, err
	}
	return out, nil
}

package model

// カートの明細。同一商品は1行（cart_id + product_idにunique、追加時は加算）。
// 価格は持たない。カート表示は常に現在の商品価格で計算する。
type CartItem struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    string `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_cart_product" json:"product_id"`
	Quantity  int64  `gorm:"not null" json:"quantity"`
}

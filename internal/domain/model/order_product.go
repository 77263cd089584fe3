package model

// 注文時点の商品スナップショット。
// 後から商品名や価格が変わっても過去の注文には影響しない。
type OrderProduct struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   string  `gorm:"type:varchar(36);not null;index" json:"-"`
	ProductID string  `gorm:"type:varchar(36);not null" json:"product_id"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	Quantity  int64   `gorm:"not null" json:"quantity"`
}

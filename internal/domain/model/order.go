package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// 支払い方法は"UPI"か"COD"。値の検証はしない（記録のみ、決済処理はスコープ外）。
type Order struct {
	ID               string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID           string      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	TotalAmount      float64     `gorm:"not null" json:"total_amount"`
	PaymentMethod    string      `gorm:"type:varchar(20);not null" json:"payment_method"`
	UPIID            string      `gorm:"column:upi_id;type:varchar(255)" json:"upi_id,omitempty"`
	DeliveryAddress  string      `gorm:"type:text;not null" json:"delivery_address"`
	Phone            string      `gorm:"type:varchar(30);not null" json:"phone"`
	Status           OrderStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	PrescriptionData string      `gorm:"type:text" json:"prescription_data,omitempty"`
	CreatedAt        time.Time   `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

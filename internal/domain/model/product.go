package model

// 商品はAPIからは読み取り専用。登録はcmd/seed（カタログローダー）が行う。
type Product struct {
	ID                   string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name                 string  `gorm:"type:varchar(255);not null" json:"name"`
	Description          string  `gorm:"type:text" json:"description"`
	Price                float64 `gorm:"not null" json:"price"`
	ImageURL             string  `gorm:"type:text" json:"image_url"`
	Category             string  `gorm:"type:varchar(100);not null;index" json:"category"`
	Stock                int64   `gorm:"not null" json:"stock"`
	RequiresPrescription bool    `gorm:"not null;default:false" json:"requires_prescription"`
}

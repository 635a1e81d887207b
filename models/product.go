package models

import "time"

type Product struct {
	ID            string   `gorm:"primaryKey" json:"id"`
	Title         string   `gorm:"not null" json:"title"`
	Price         float64  `gorm:"not null" json:"price"`
	ImageURL      string   `json:"image_url"`
	IsAvailable   bool     `gorm:"default:true" json:"is_available"`
	IsSale        bool     `gorm:"default:false" json:"is_sale"`
	OriginalPrice *float64 `json:"original_price"`
	Category      string   `gorm:"index" json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

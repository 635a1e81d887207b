package models

import "time"

// CartItem is a flat per-user cart row. The composite unique index enforces
// one row per (user, product, size, color); re-adding increments Quantity.
type CartItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	UserID        string  `gorm:"index;uniqueIndex:idx_cart_owner_variant;not null" json:"user_id"`
	ProductID     string  `gorm:"uniqueIndex:idx_cart_owner_variant;not null" json:"product_id"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"image_url"`
	SelectedSize  string  `gorm:"uniqueIndex:idx_cart_owner_variant" json:"selected_size"`
	SelectedColor string  `gorm:"uniqueIndex:idx_cart_owner_variant" json:"selected_color"`
	Quantity      int     `json:"quantity"`
	AddedAt       time.Time `json:"added_at"`
}

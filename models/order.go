package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting fulfillment
	OrderStatusConfirmed OrderStatus = "confirmed" // Sent to fulfillment
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// ShippingAddress is snapshotted onto the order at checkout time.
type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

type Order struct {
	ID              string          `gorm:"primaryKey" json:"id"`
	UserID          string          `gorm:"index;not null" json:"user_id"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64         `json:"total_amount"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	ContactNumber   string          `json:"contact_number"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20)" json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"type:VARCHAR(20)" json:"payment_status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem is an immutable copy of a cart row at checkout time.
type OrderItem struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	OrderID       string  `gorm:"index" json:"order_id"`
	ProductID     string  `json:"product_id"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"image_url"`
	SelectedSize  string  `json:"selected_size"`
	SelectedColor string  `json:"selected_color"`
	Quantity      int     `json:"quantity"`
}

package models

import "time"

// HeroSlide is a homepage banner slide managed outside this API.
type HeroSlide struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `json:"image_url"`
	LinkURL   string `json:"link_url"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`
	SortOrder int    `gorm:"index" json:"sort_order"`
}

type FAQ struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SortOrder int    `gorm:"index" json:"sort_order"`
}

type ContactMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// DiscountSignup records a phone number opted in to the discount promo.
type DiscountSignup struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	PhoneNumber string    `gorm:"uniqueIndex;not null" json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

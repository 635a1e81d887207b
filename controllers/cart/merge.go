package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wildbreeze/storefront-api/models"
)

type GuestCartItem struct {
	ProductID     string  `json:"product_id"`
	Quantity      int     `json:"quantity"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"image_url"`
	SelectedSize  string  `json:"selected_size"`
	SelectedColor string  `json:"selected_color"`
}

type MergeCartInput struct {
	GuestCart []GuestCartItem `json:"guestCart"`
}

// POST /api/cart/merge
//
// Reconciles a client-held guest cart into the user's server-side cart on
// login. Each guest item is merged independently (best effort): an existing
// row for the same (product, size, color) has its quantity incremented,
// anything else is inserted with the denormalized display fields.
func MergeCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input MergeCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		for _, guestItem := range input.GuestCart {
			if guestItem.ProductID == "" {
				continue
			}
			quantity := guestItem.Quantity
			if quantity <= 0 {
				quantity = 1
			}

			var item models.CartItem
			err := db.Where(
				"user_id = ? AND product_id = ? AND selected_size = ? AND selected_color = ?",
				userID, guestItem.ProductID, guestItem.SelectedSize, guestItem.SelectedColor,
			).First(&item).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				newItem := models.CartItem{
					UserID:        userID,
					ProductID:     guestItem.ProductID,
					Title:         guestItem.Title,
					Price:         guestItem.Price,
					ImageURL:      guestItem.ImageURL,
					SelectedSize:  guestItem.SelectedSize,
					SelectedColor: guestItem.SelectedColor,
					Quantity:      quantity,
					AddedAt:       time.Now(),
				}
				if err := db.Create(&newItem).Error; err != nil {
					continue
				}
				continue
			}
			if err != nil {
				continue
			}

			item.Quantity += quantity
			item.AddedAt = time.Now()
			db.Save(&item)
		}

		var items []models.CartItem
		if err := db.Where("user_id = ?", userID).Order("added_at DESC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

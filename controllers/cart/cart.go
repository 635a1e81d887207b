package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wildbreeze/storefront-api/models"
)

type CartItemInput struct {
	ProductID     string  `json:"productId" binding:"required"`
	Quantity      int     `json:"quantity"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"imageUrl"`
	SelectedSize  string  `json:"selectedSize"`
	SelectedColor string  `json:"selectedColor"`
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var items []models.CartItem
		if err := db.Where("user_id = ?", userID).Order("added_at DESC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /api/cart
//
// Re-adding the same (product, size, color) increments quantity instead of
// inserting a second row.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}
		if input.Quantity <= 0 {
			input.Quantity = 1
		}

		var item models.CartItem
		err := db.Where(
			"user_id = ? AND product_id = ? AND selected_size = ? AND selected_color = ?",
			userID, input.ProductID, input.SelectedSize, input.SelectedColor,
		).First(&item).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{
				UserID:        userID,
				ProductID:     input.ProductID,
				Title:         input.Title,
				Price:         input.Price,
				ImageURL:      input.ImageURL,
				SelectedSize:  input.SelectedSize,
				SelectedColor: input.SelectedColor,
				Quantity:      input.Quantity,
				AddedAt:       time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			c.JSON(http.StatusCreated, item)
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item.Quantity += input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/:productId
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("productId")

		result := db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
	}
}

// DELETE /api/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

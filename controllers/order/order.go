package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wildbreeze/storefront-api/models"
)

// ErrEmptyCart is returned when checkout is attempted with no cart rows.
var ErrEmptyCart = errors.New("cart is empty")

type PlaceOrderRequest struct {
	ShippingAddress models.ShippingAddress `json:"shippingAddress" binding:"required"`
	ContactNumber   string                 `json:"contactNumber"`
}

// PlaceOrder converts the user's current cart into a persisted order.
// The order row, its items, and the cart clear are committed atomically so
// an order always reflects a consistent snapshot of the cart, exactly once.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (*models.Order, error) {
	var cartItems []models.CartItem
	if err := db.Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	order := buildOrder(userID, cartItems, req)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// buildOrder snapshots the cart rows into an immutable order record.
func buildOrder(userID string, cartItems []models.CartItem, req PlaceOrderRequest) models.Order {
	var total float64
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		total += item.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ID:            uuid.NewString(),
			ProductID:     item.ProductID,
			Title:         item.Title,
			Price:         item.Price,
			ImageURL:      item.ImageURL,
			SelectedSize:  item.SelectedSize,
			SelectedColor: item.SelectedColor,
			Quantity:      item.Quantity,
		})
	}

	return models.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           orderItems,
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
		ContactNumber:   req.ContactNumber,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		CreatedAt:       time.Now(),
	}
}

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		broadcastNewOrder(*order)

		c.JSON(http.StatusCreated, gin.H{
			"id":          order.ID,
			"message":     "Order placed successfully",
			"totalAmount": order.TotalAmount,
		})
	}
}

// GET /api/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		orderID := c.Param("id")

		var order models.Order
		if err := db.
			Preload("Items").
			Where("id = ? AND user_id = ?", orderID, userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

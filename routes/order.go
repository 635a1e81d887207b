package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/wildbreeze/storefront-api/controllers/order"
	"github.com/wildbreeze/storefront-api/middleware"
)

// SetupOrderRoutes registers the authenticated order lifecycle plus the
// live order feed.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	// websocket endpoint for real-time order updates
	r.GET("/api/orders/ws", orderControllers.OrderWebSocketHandler)

	orders := r.Group("/api/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("", orderControllers.PlaceOrderHandler(db))
		orders.GET("", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))
	}
}

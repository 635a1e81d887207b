package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/wildbreeze/storefront-api/controllers/cart"
	"github.com/wildbreeze/storefront-api/middleware"
)

// SetupCartRoutes registers the JWT-protected "/api/cart" endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/api/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("", cartControllers.AddCartItem(db))
		cartGroup.DELETE("/:productId", cartControllers.DeleteCartItem(db))
		cartGroup.DELETE("", cartControllers.ClearCart(db))
		cartGroup.POST("/merge", cartControllers.MergeCart(db))
	}
}

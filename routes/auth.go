package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wildbreeze/storefront-api/auth"
	"github.com/wildbreeze/storefront-api/ratelimit"
)

// SetupAuthRoutes registers the public "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, limiter *ratelimit.Limiter) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db, limiter))
	}
}

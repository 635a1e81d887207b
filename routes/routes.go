package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wildbreeze/storefront-api/printful"
	"github.com/wildbreeze/storefront-api/ratelimit"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, limiter *ratelimit.Limiter, printfulClient *printful.Client) {
	SetupAuthRoutes(r, db, limiter)
	SetupShopRoutes(r, db, printfulClient)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   "2.0.0",
		})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

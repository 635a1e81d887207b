package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	contentControllers "github.com/wildbreeze/storefront-api/controllers/content"
	productControllers "github.com/wildbreeze/storefront-api/controllers/product"
	"github.com/wildbreeze/storefront-api/printful"
)

// SetupShopRoutes registers the public storefront endpoints: catalog,
// content, contact, and the discount signup.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB, printfulClient *printful.Client) {
	api := r.Group("/api")
	{
		api.GET("/products", productControllers.GetProducts(db))
		api.GET("/products/:id", productControllers.GetProductByID(db))
		api.GET("/printful/products", productControllers.GetPrintfulProducts(printfulClient))

		api.GET("/hero-slides", contentControllers.GetHeroSlides(db))
		api.GET("/faqs", contentControllers.GetFAQs(db))
		api.POST("/contact", contentControllers.SubmitContact(db))
		api.POST("/subscribe", contentControllers.Subscribe(db))
	}
}

package productControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wildbreeze/storefront-api/catalog"
	"github.com/wildbreeze/storefront-api/models"
)

// GET /api/products
//
// Loads the full candidate set and runs it through the catalog pipeline.
// A failing store degrades to an empty list; the storefront never sees a
// listing error.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			log.Printf("products: listing failed: %v", err)
			c.JSON(http.StatusOK, []models.Product{})
			return
		}

		query := catalog.ParseQuery(c.Query)
		c.JSON(http.StatusOK, catalog.Apply(products, query))
	}
}

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

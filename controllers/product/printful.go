package productControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wildbreeze/storefront-api/printful"
)

// GET /api/printful/products
//
// Proxies the fulfillment catalog so the API token never reaches the client.
func GetPrintfulProducts(client *printful.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Printful API not configured"})
			return
		}

		products, err := client.ListProducts(c.Request.Context())
		if err != nil {
			log.Printf("printful: catalog fetch failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

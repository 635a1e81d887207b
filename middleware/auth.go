package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wildbreeze/storefront-api/auth"
)

// ValidateToken authenticates protected routes from the Authorization
// header and puts user_id and email on the request context.
func ValidateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}

	claims := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "), os.Getenv("JWT_SECRET"))
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", claims.UserID)
	c.Set("email", claims.Email)
	c.Next()
}

package contentControllers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wildbreeze/storefront-api/models"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\+?\d{10,15}$`)
)

// GET /api/hero-slides
func GetHeroSlides(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var slides []models.HeroSlide
		if err := db.Where("is_active = ?", true).Order("sort_order ASC").Find(&slides).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch slides"})
			return
		}
		c.JSON(http.StatusOK, slides)
	}
}

// GET /api/faqs
func GetFAQs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var faqs []models.FAQ
		if err := db.Order("sort_order ASC").Find(&faqs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch FAQs"})
			return
		}
		c.JSON(http.StatusOK, faqs)
	}
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// POST /api/contact
func SubmitContact(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if strings.TrimSpace(input.Message) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
			return
		}
		if input.Email != "" && !emailRegex.MatchString(input.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
			return
		}

		msg := models.ContactMessage{
			ID:      uuid.NewString(),
			Name:    input.Name,
			Email:   input.Email,
			Message: input.Message,
		}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Message received"})
	}
}

type SubscribeInput struct {
	PhoneNumber string `json:"phoneNumber"`
}

var phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// POST /api/subscribe
//
// Idempotent: an already-registered phone number still gets the success
// response so the promo modal behaves the same on repeat submissions.
func Subscribe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubscribeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if strings.TrimSpace(input.PhoneNumber) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
			return
		}

		phone := phoneStripper.Replace(input.PhoneNumber)
		if !phoneRegex.MatchString(phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number format"})
			return
		}

		var existing models.DiscountSignup
		err := db.Select("id").Where("phone_number = ?", phone).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			signup := models.DiscountSignup{ID: uuid.NewString(), PhoneNumber: phone}
			if err := db.Create(&signup).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Discount activated!", "discountActive": true})
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wildbreeze/storefront-api/middleware"
	"github.com/wildbreeze/storefront-api/models"
	"github.com/wildbreeze/storefront-api/printful"
	"github.com/wildbreeze/storefront-api/ratelimit"
	"github.com/wildbreeze/storefront-api/routes"
)

// Origins allowed to call the API, in addition to CORS_ORIGIN from the
// environment and Vercel preview deployments.
var allowedOrigins = []string{
	"https://wild-breeze.pages.dev",
	"http://localhost:5173",
	"http://localhost:3000",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:3000",
}

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.HeroSlide{},
		&models.FAQ{},
		&models.ContactMessage{},
		&models.DiscountSignup{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  isAllowedOrigin,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	// Security headers on every response
	r.Use(middleware.SecurityHeaders())

	// Login rate limiter: 5 attempts per 15 minutes per IP
	limiter := ratelimit.New(5, 15*time.Minute)
	go limiter.StartCleanupWorker(context.Background(), time.Hour)

	// Printful catalog mirror
	var printfulClient *printful.Client
	if token := os.Getenv("PRINTFUL_API_TOKEN"); token != "" {
		printfulClient = printful.New(token)
	} else {
		log.Println("⚠️ PRINTFUL_API_TOKEN not set, catalog mirror disabled")
	}

	// Setup routes
	routes.SetupRoutes(r, db, limiter, printfulClient)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// isAllowedOrigin implements the CORS allow-list: the configured origin,
// the static list, and Vercel deployments. Everything else is rejected.
func isAllowedOrigin(origin string) bool {
	if origin == "" {
		return false
	}

	configured := os.Getenv("CORS_ORIGIN")
	if configured == "*" {
		return true
	}
	if configured != "" && origin == configured {
		return true
	}

	for _, allowed := range allowedOrigins {
		if origin == allowed {
			return true
		}
	}

	return strings.HasSuffix(origin, ".vercel.app")
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

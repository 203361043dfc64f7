package main

import (
	"log"
	"net/http"
	"os"

	"natheme-api/config"
	"natheme-api/handlers"
	"natheme-api/mailer"
	"natheme-api/routes"
	"natheme-api/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, then typed configuration
	_ = godotenv.Load()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database and seed the owner account
	config.InitDB(cfg.DatabaseDSN)
	config.EnsureOwner(cfg.OwnerEmail)

	// Wire services and handlers
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	auth := service.NewAuthService(config.DB, tokens, cfg.OwnerEmail)

	var mail mailer.Mailer = mailer.LogMailer{}
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPUser, cfg.ContactReceiver)
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Natheme API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🌿 Welcome to the Natheme API",
			"docs":    "/api/roles",
			"health":  "/health",
			"roles":   []string{"customer", "admin", "owner"},
		})
	})

	// Uploaded catalogs and project images
	r.Static("/uploads", cfg.UploadDir)

	// Register all routes
	routes.SetupRoutes(r, tokens, routes.Handlers{
		Auth:    handlers.NewAuthHandler(auth),
		Admin:   handlers.NewAdminHandler(auth),
		Contact: handlers.NewContactHandler(mail),
	})

	// Start server
	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

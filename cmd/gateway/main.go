package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"brickshare/internal/client"
	"brickshare/internal/config"
	"brickshare/internal/handlers"
	"brickshare/internal/logger"
	"brickshare/internal/middleware"
	"brickshare/internal/services"
	"brickshare/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Marketplace API client: the authoritative owner of all property and
	// investment state. The gateway holds no store of its own.
	httpClient := &http.Client{Timeout: appConfig.RequestTimeout}
	marketplace := client.New(appConfig.MarketplaceAPIURL, httpClient)

	// Initialize services
	propertyService := services.NewPropertyService(marketplace)
	dashboardService := services.NewDashboardService(marketplace)
	adminService := services.NewAdminService(marketplace)

	// Initialize handlers
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group; every route forwards the caller's bearer session upstream
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Session())

	// Property catalog and purchase routes
	properties := v1.Group("/properties")
	properties.GET("", propertyHandler.ListProperties)
	properties.GET("/:id", propertyHandler.GetProperty)
	properties.GET("/slug/:slug", propertyHandler.GetPropertyBySlug)
	properties.POST("/:id/purchase", propertyHandler.Purchase)

	// Investor dashboard routes
	dashboard := v1.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/portfolio", dashboardHandler.GetPortfolio)

	// Admin routes
	admin := v1.Group("/admin")
	admin.GET("/stats", adminHandler.GetStats)
	admin.GET("/users/:id/investments", adminHandler.GetUserInvestments)
	admin.PATCH("/users/:id/status", adminHandler.UpdateUserStatus)

	log.Infof("Starting Brickshare gateway on port %s", appConfig.Port)
	log.Infof("Marketplace API: %s", appConfig.MarketplaceAPIURL)
	return router.Run(":" + appConfig.Port)
}

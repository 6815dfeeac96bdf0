package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/label5hub/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestLogger(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Affiliate link endpoints
		links := v1.Group("/links")
		{
			links.POST("", handler.EncodeLink)
			links.GET("/parse", handler.ParseLink)
		}

		// Admin endpoints require the API key header
		admin := v1.Group("/admin")
		admin.Use(APIKeyAuth(cfg.Server.AdminAPIKey))
		{
			admin.POST("/match", handler.MatchCandidates)
			admin.POST("/listings", handler.CreateListing)
			admin.GET("/certified", handler.ImportCertified)
		}
	}

	return router
}

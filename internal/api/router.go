package api

import (
	"github.com/Conceptual-Machines/ikovsky-api/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/ikovsky-api/internal/api/middleware"
	"github.com/Conceptual-Machines/ikovsky-api/internal/config"
	"github.com/Conceptual-Machines/ikovsky-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the song API. cw may be nil when CloudWatch is not configured.
func SetupRouter(songs handlers.SongService, cfg *config.Config, cw *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cw))

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg.StorageBackend)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version, cfg.StorageBackend, songs)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	v1 := router.Group("/api/v1")
	v1.Use(apimiddleware.Auth(cfg))
	{
		songHandler := handlers.NewSongHandler(songs)
		v1.POST("/songs", songHandler.Generate)
		v1.GET("/songs/:id", songHandler.Get)
		v1.PUT("/songs/:id/save", songHandler.Save)
	}

	return router
}

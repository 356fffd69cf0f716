package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kellyb9/kiro-test/internal/container"
	"github.com/kellyb9/kiro-test/internal/handlers"
	"github.com/kellyb9/kiro-test/internal/middleware"
)

const apiVersion = "1.0.0"

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(appContainer *container.Container) *gin.Engine {
	cfg := appContainer.Config

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Total-Count"},
		MaxAge:        time.Hour,
	}
	if cfg.AllowAllOrigins() {
		// Credentials cannot be combined with a wildcard origin.
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = cfg.CORSAllowCredentials
	}
	r.Use(cors.New(corsConfig))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(appContainer.Logger))
	r.Use(middleware.ErrorHandler(appContainer.Logger))
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Events API",
			"version": apiVersion,
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "events-api",
		})
	})

	eventRoutes := r.Group("/events")
	{
		eventRoutes.POST("", handlers.CreateEvent(appContainer.EventService, cfg))
		eventRoutes.GET("", handlers.ListEvents(appContainer.EventService, cfg))
		eventRoutes.GET("/:id", handlers.GetEvent(appContainer.EventService, cfg))
		eventRoutes.PUT("/:id", handlers.UpdateEvent(appContainer.EventService, cfg))
		eventRoutes.DELETE("/:id", handlers.DeleteEvent(appContainer.EventService, cfg))
	}

	return r
}

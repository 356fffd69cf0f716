package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kellyb9/kiro-test/internal/config"
	"github.com/kellyb9/kiro-test/internal/connect"
	"github.com/kellyb9/kiro-test/internal/container"
	"github.com/kellyb9/kiro-test/internal/models"
	"github.com/kellyb9/kiro-test/internal/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup logger
	logger := setupLogger(cfg)
	logger.Info("Starting Events API server", "environment", cfg.Environment, "store", cfg.StoreDriver)

	// Initialize the event store; the handle is passed down explicitly and
	// closed on shutdown.
	var (
		eventRepo models.EventRepo
		closeRepo func() error
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		mongoClient, err := connect.MongoDBConnect(cfg.MongoDBURI)
		if err != nil {
			logger.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		logger.Info("Connected to MongoDB successfully")
		eventRepo = models.MongodbNewRepo(mongoClient, cfg.MongoDBDatabase)
		closeRepo = func() error { return connect.MongoDBDisconnect(mongoClient) }
	case config.StoreDriverPebble:
		pebbleDB, err := connect.OpenPebble(cfg.PebbleDataDir)
		if err != nil {
			logger.Error("Failed to open pebble store", "error", err)
			os.Exit(1)
		}
		logger.Info("Opened pebble store", "dir", cfg.PebbleDataDir)
		eventRepo = models.PebbleNewRepo(pebbleDB)
		closeRepo = pebbleDB.Close
	}

	// Initialize dependency container
	appContainer := container.NewContainer(logger, cfg, eventRepo)

	// Setup routes
	router := routes.SetupRoutes(appContainer)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Close the event store
	if err := closeRepo(); err != nil {
		logger.Error("Error closing event store", "error", err)
	}

	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	if cfg.IsProduction() {
		// JSON logging for production
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		// Human-readable logging for development
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}

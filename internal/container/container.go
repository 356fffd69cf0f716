package container

import (
	"log/slog"

	"github.com/kellyb9/kiro-test/internal/config"
	"github.com/kellyb9/kiro-test/internal/models"
	"github.com/kellyb9/kiro-test/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger       *slog.Logger
	Config       *config.Config
	EventRepo    models.EventRepo
	EventService *services.EventService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, eventRepo models.EventRepo) *Container {
	eventService := services.NewEventService(eventRepo)

	return &Container{
		Logger:       logger,
		Config:       cfg,
		EventRepo:    eventRepo,
		EventService: eventService,
	}
}

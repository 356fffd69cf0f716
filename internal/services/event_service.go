package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kellyb9/kiro-test/internal/models"
)

// EventService owns the event contract: validation before any store access,
// identifier assignment, and timestamp stamping. The store handle is passed
// in, never ambient.
type EventService struct {
	eventRepo models.EventRepo
}

func NewEventService(eventRepo models.EventRepo) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// CreateEvent validates and normalizes the payload, resolves the identifier
// (client-supplied verbatim, or a fresh UUID when absent), stamps both
// timestamps with the same instant, and writes the record. A collision with
// an existing eventId is a conflict, never an overwrite.
func (es *EventService) CreateEvent(ctx context.Context, input *models.CreateEventInput) (*models.Event, error) {
	if err := models.ValidateCreate(input); err != nil {
		return nil, err
	}

	eventID := uuid.NewString()
	if input.EventID != nil {
		eventID = *input.EventID
	}
	now := time.Now().UTC()

	ev := &models.Event{
		EventID:     eventID,
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		Capacity:    input.Capacity,
		Organizer:   input.Organizer,
		Status:      models.EventStatus(input.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := es.eventRepo.CreateEvent(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func (es *EventService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, models.ErrInvalidEventID
	}
	return es.eventRepo.GetEvent(ctx, eventID)
}

func (es *EventService) ListEvents(ctx context.Context, filter models.ListFilter) ([]*models.Event, error) {
	return es.eventRepo.ListEvents(ctx, filter)
}

// UpdateEvent merges the partial payload over the stored record. Only fields
// present in the payload are replaced; updatedAt is refreshed, createdAt is
// untouched. Concurrent updates to the same id are last-write-wins.
func (es *EventService) UpdateEvent(ctx context.Context, eventID string, input *models.UpdateEventInput) (*models.Event, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, models.ErrInvalidEventID
	}
	if err := models.ValidateUpdate(input); err != nil {
		return nil, err
	}
	if input.IsEmpty() {
		return nil, models.ErrEmptyUpdate
	}
	return es.eventRepo.UpdateEvent(ctx, eventID, input, time.Now().UTC())
}

func (es *EventService) DeleteEvent(ctx context.Context, eventID string) error {
	if strings.TrimSpace(eventID) == "" {
		return models.ErrInvalidEventID
	}
	return es.eventRepo.DeleteEvent(ctx, eventID)
}

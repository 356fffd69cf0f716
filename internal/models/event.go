package models

import (
	"time"
)

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusCancelled EventStatus = "cancelled"
	StatusCompleted EventStatus = "completed"
	StatusActive    EventStatus = "active"
	StatusInactive  EventStatus = "inactive"
)

// IsValid reports whether s is one of the known statuses. New statuses are
// added here and in the oneof tag on the input structs.
func (s EventStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusCancelled, StatusCompleted, StatusActive, StatusInactive:
		return true
	}
	return false
}

// Accepted date layouts: calendar date or date+time, both ISO 8601 subsets.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// Field bounds shared by create and update validation.
const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 2000
	MaxLocationLen    = 500
	MaxOrganizerLen   = 200
	MinCapacity       = 1
	MaxCapacity       = 1_000_000
)

// Event is the stored record. The event ID doubles as the storage key
// (Mongo _id / Pebble key), which is what enforces its uniqueness.
type Event struct {
	EventID     string      `bson:"_id" json:"eventId"`
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description" json:"description"`
	Date        string      `bson:"date" json:"date"`
	Location    string      `bson:"location" json:"location"`
	Capacity    int         `bson:"capacity" json:"capacity"`
	Organizer   string      `bson:"organizer" json:"organizer"`
	Status      EventStatus `bson:"status" json:"status"`
	CreatedAt   time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updatedAt"`
}

// CreateEventInput is the create payload. EventID is optional; when absent a
// UUID is generated by the service. It is a pointer so a supplied-but-blank
// id can be told apart from an omitted one. Status defaults to draft.
type CreateEventInput struct {
	EventID     *string `json:"eventId"`
	Title       string  `json:"title" validate:"required,notblank,max=200"`
	Description string  `json:"description" validate:"required,notblank,max=2000"`
	Date        string  `json:"date" validate:"required,eventdate"`
	Location    string  `json:"location" validate:"required,notblank,max=500"`
	Capacity    int     `json:"capacity" validate:"min=1,max=1000000"`
	Organizer   string  `json:"organizer" validate:"required,notblank,max=200"`
	Status      string  `json:"status" validate:"omitempty,oneof=draft published cancelled completed active inactive"`
}

// UpdateEventInput is a partial payload: only non-nil fields are applied.
// Unknown JSON fields are dropped by decoding.
type UpdateEventInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity"`
	Organizer   *string `json:"organizer"`
	Status      *string `json:"status"`
}

// IsEmpty reports whether the payload carries no fields at all.
func (u *UpdateEventInput) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Date == nil &&
		u.Location == nil && u.Capacity == nil && u.Organizer == nil && u.Status == nil
}

// Apply merges the partial payload over the event field by field and
// refreshes UpdatedAt. CreatedAt is never touched.
func (e *Event) Apply(u *UpdateEventInput, now time.Time) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Date != nil {
		e.Date = *u.Date
	}
	if u.Location != nil {
		e.Location = *u.Location
	}
	if u.Capacity != nil {
		e.Capacity = *u.Capacity
	}
	if u.Organizer != nil {
		e.Organizer = *u.Organizer
	}
	if u.Status != nil {
		e.Status = EventStatus(*u.Status)
	}
	e.UpdatedAt = now
}

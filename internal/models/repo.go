package models

import (
	"context"
	"strings"
	"time"
)

// DefaultListLimit caps List results when the caller gives no limit.
const DefaultListLimit = 100

// ListFilter narrows a List call. Zero values mean "no filter".
type ListFilter struct {
	// Status filters by exact status match.
	Status string
	// Organizer filters by substring match on the organizer field.
	Organizer string
	// Limit truncates the result set; DefaultListLimit when <= 0.
	Limit int
}

func (f ListFilter) limit() int {
	if f.Limit <= 0 {
		return DefaultListLimit
	}
	return f.Limit
}

// Matches applies the in-memory filter semantics shared by scan-based stores.
func (f ListFilter) Matches(ev *Event) bool {
	if f.Status != "" && string(ev.Status) != f.Status {
		return false
	}
	if f.Organizer != "" && !strings.Contains(ev.Organizer, f.Organizer) {
		return false
	}
	return true
}

// EventRepo is the persistence contract for events. Implementations map the
// taxonomy in errors.go: a missing record is ErrNotFound, a create collision
// is ErrConflict, and any store failure wraps ErrStoreUnavailable so it is
// never confused with a missing record.
//
// UpdateEvent is read-modify-write with no compare-and-swap: concurrent
// updates to the same eventId race and the last write wins. ListEvents
// returns records in whatever order the underlying scan yields.
type EventRepo interface {
	CreateEvent(ctx context.Context, ev *Event) error
	GetEvent(ctx context.Context, eventID string) (*Event, error)
	UpdateEvent(ctx context.Context, eventID string, upd *UpdateEventInput, now time.Time) (*Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
	ListEvents(ctx context.Context, filter ListFilter) ([]*Event, error)
}

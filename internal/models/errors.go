package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the referenced eventId has no stored record.
	ErrNotFound = errors.New("event not found")
	// ErrConflict means a create collided with an existing eventId.
	ErrConflict = errors.New("event already exists")
	// ErrInvalidEventID means a supplied eventId is empty or whitespace-only.
	ErrInvalidEventID = errors.New("event ID cannot be empty")
	// ErrEmptyUpdate means an update payload carried no fields.
	ErrEmptyUpdate = errors.New("no fields to update")
	// ErrStoreUnavailable means the store failed or throttled the request.
	// It is kept distinct from ErrNotFound so a failed read is never
	// mistaken for a missing record; callers may retry.
	ErrStoreUnavailable = errors.New("event store unavailable")
)

// FieldError is a single field's validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Message) }

// ValidationError aggregates every violation found in a payload so the
// caller sees the complete set in one response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		msgs[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

package models

import (
	"testing"
	"time"
)

func sampleEvent() *Event {
	created := time.Date(2024, 11, 1, 10, 0, 0, 0, time.UTC)
	return &Event{
		EventID:     "evt-1",
		Title:       "T",
		Description: "D",
		Date:        "2024-12-15",
		Location:    "L",
		Capacity:    200,
		Organizer:   "O",
		Status:      StatusActive,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestApplyPartialUpdate(t *testing.T) {
	ev := sampleEvent()
	now := ev.CreatedAt.Add(time.Hour)

	ev.Apply(&UpdateEventInput{Capacity: intptr(250)}, now)

	if ev.Capacity != 250 {
		t.Errorf("expected capacity 250, got %d", ev.Capacity)
	}
	if !ev.UpdatedAt.Equal(now) {
		t.Errorf("expected updatedAt refreshed to %v, got %v", now, ev.UpdatedAt)
	}
	// Everything else keeps its prior value.
	if ev.Title != "T" || ev.Description != "D" || ev.Date != "2024-12-15" ||
		ev.Location != "L" || ev.Organizer != "O" || ev.Status != StatusActive {
		t.Errorf("unrelated fields changed: %+v", ev)
	}
	if !ev.CreatedAt.Equal(time.Date(2024, 11, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("createdAt must never change, got %v", ev.CreatedAt)
	}
}

func TestApplyAllFields(t *testing.T) {
	ev := sampleEvent()
	now := ev.CreatedAt.Add(time.Minute)

	ev.Apply(&UpdateEventInput{
		Title:       strptr("T2"),
		Description: strptr("D2"),
		Date:        strptr("2025-01-01T09:00:00"),
		Location:    strptr("L2"),
		Capacity:    intptr(10),
		Organizer:   strptr("O2"),
		Status:      strptr("completed"),
	}, now)

	if ev.Title != "T2" || ev.Description != "D2" || ev.Date != "2025-01-01T09:00:00" ||
		ev.Location != "L2" || ev.Capacity != 10 || ev.Organizer != "O2" || ev.Status != StatusCompleted {
		t.Errorf("full update not applied: %+v", ev)
	}
}

func TestEventStatusIsValid(t *testing.T) {
	for _, s := range []EventStatus{StatusDraft, StatusPublished, StatusCancelled, StatusCompleted, StatusActive, StatusInactive} {
		if !s.IsValid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	for _, s := range []EventStatus{"", "archived", "DRAFT"} {
		if s.IsValid() {
			t.Errorf("status %q should be invalid", s)
		}
	}
}

func TestListFilterMatches(t *testing.T) {
	ev := sampleEvent()

	if !(ListFilter{}).Matches(ev) {
		t.Error("empty filter should match everything")
	}
	if !(ListFilter{Status: "active"}).Matches(ev) {
		t.Error("matching status filter should match")
	}
	if (ListFilter{Status: "draft"}).Matches(ev) {
		t.Error("non-matching status filter should not match")
	}
	if !(ListFilter{Organizer: "O"}).Matches(ev) {
		t.Error("organizer substring filter should match")
	}
	if (ListFilter{Organizer: "zzz"}).Matches(ev) {
		t.Error("non-matching organizer filter should not match")
	}
}

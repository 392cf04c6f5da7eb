package testutil

import (
	"time"

	"github.com/alexanderramin/workcal/internal/domain"
	"github.com/google/uuid"
)

// EventOption customizes a test event.
type EventOption func(*domain.CalendarEvent)

func WithSummary(s string) EventOption {
	return func(e *domain.CalendarEvent) {
		e.Summary = s
	}
}

func WithSource(s domain.EventSource) EventOption {
	return func(e *domain.CalendarEvent) {
		e.Source = s
	}
}

func WithAllDay() EventOption {
	return func(e *domain.CalendarEvent) {
		e.AllDay = true
	}
}

// NewTestEvent returns a timed event starting at start and lasting d.
func NewTestEvent(start time.Time, d time.Duration, opts ...EventOption) *domain.CalendarEvent {
	e := &domain.CalendarEvent{
		ID:        uuid.New().String(),
		Summary:   "Test event",
		StartsAt:  start,
		EndsAt:    start.Add(d),
		Source:    domain.SourceManual,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// At builds a UTC instant for test readability.
func At(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// Day builds a UTC calendar day.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

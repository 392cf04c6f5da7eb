package domain

import (
	"fmt"
	"time"
)

// CalendarEvent is an event held by the local calendar. Timed events occupy
// [StartsAt, EndsAt); all-day events only mark their day.
type CalendarEvent struct {
	ID        string
	Summary   string
	StartsAt  time.Time
	EndsAt    time.Time
	AllDay    bool
	Source    EventSource
	CreatedAt time.Time
}

// Validate checks the invariants the store relies on.
func (e *CalendarEvent) Validate() error {
	if e.Summary == "" {
		return fmt.Errorf("event summary is required")
	}
	if e.StartsAt.IsZero() {
		return fmt.Errorf("event start is required")
	}
	if e.EndsAt.Before(e.StartsAt) {
		return fmt.Errorf("event %q ends before it starts", e.Summary)
	}
	return nil
}

// Duration returns the event length. All-day events report zero.
func (e *CalendarEvent) Duration() time.Duration {
	if e.AllDay {
		return 0
	}
	return e.EndsAt.Sub(e.StartsAt)
}

// DisplayID returns the first 8 characters of the ID.
func (e *CalendarEvent) DisplayID() string {
	if len(e.ID) >= 8 {
		return e.ID[:8]
	}
	return e.ID
}

// Package calendar turns stored calendar events into the busy intervals the
// scheduler consumes.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workcal/internal/domain"
)

// EventLister is the read side of a calendar backend.
type EventLister interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.CalendarEvent, error)
}

// BusyIntervals converts events into busy intervals. Each event is dated by
// the calendar day, in loc, that it starts on; its duration is end minus
// start in whole minutes, expressed in hours. All-day events contribute zero
// hours. The returned slice is freshly allocated on every call.
func BusyIntervals(events []*domain.CalendarEvent, loc *time.Location) []domain.BusyInterval {
	out := make([]domain.BusyInterval, 0, len(events))
	for _, e := range events {
		if e == nil {
			continue
		}
		out = append(out, domain.BusyInterval{
			Summary:       e.Summary,
			Date:          domain.DateOf(e.StartsAt.In(loc)),
			DurationHours: DurationHours(e),
		})
	}
	return out
}

// DurationHours returns the busy hours of one event.
func DurationHours(e *domain.CalendarEvent) float64 {
	minutes := int(e.Duration() / time.Minute)
	if minutes < 0 {
		return 0
	}
	return float64(minutes) / 60
}

// Window returns the half-open instant range covering every calendar day in
// [first, last], with day boundaries taken in loc.
func Window(first, last time.Time, loc *time.Location) (time.Time, time.Time) {
	y1, m1, d1 := first.Date()
	y2, m2, d2 := last.Date()
	from := time.Date(y1, m1, d1, 0, 0, 0, 0, loc)
	to := time.Date(y2, m2, d2+1, 0, 0, 0, 0, loc)
	return from, to
}

// Collect loads the events starting on a day in [first, last] and converts
// them.
func Collect(ctx context.Context, src EventLister, first, last time.Time, loc *time.Location) ([]*domain.CalendarEvent, []domain.BusyInterval, error) {
	if domain.DateOf(first).After(domain.DateOf(last)) {
		return nil, nil, nil
	}
	from, to := Window(first, last, loc)
	events, err := src.ListBetween(ctx, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("loading calendar events: %w", err)
	}
	return events, BusyIntervals(events, loc), nil
}

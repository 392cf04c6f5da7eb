package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/workcal/internal/domain"
	"github.com/google/uuid"
)

// Convert turns a validated schema into calendar events ready for storage.
// fallbackSource is used when the file names none. Call
// ValidateImportSchema first.
func Convert(schema *ImportSchema, fallbackSource string, loc *time.Location) ([]*domain.CalendarEvent, error) {
	now := time.Now().UTC()
	source := domain.EventSource(domain.CoalesceStr(schema.Source, fallbackSource, string(domain.SourceImport)))

	events := make([]*domain.CalendarEvent, 0, len(schema.Events))
	for i, ei := range schema.Events {
		e := &domain.CalendarEvent{
			ID:        uuid.New().String(),
			Summary:   ei.Summary,
			Source:    source,
			CreatedAt: now,
		}

		if domain.BoolFromPtrWithDefault(false, ei.AllDay) {
			d, err := time.ParseInLocation(domain.DateLayout, ei.Date, loc)
			if err != nil {
				return nil, fmt.Errorf("events[%d].date: %w", i, err)
			}
			e.AllDay = true
			e.StartsAt = d
			e.EndsAt = d.AddDate(0, 0, 1)
		} else {
			start, err := ParseInstant(ei.Start, loc)
			if err != nil {
				return nil, fmt.Errorf("events[%d].start: %w", i, err)
			}
			end, err := ParseInstant(ei.End, loc)
			if err != nil {
				return nil, fmt.Errorf("events[%d].end: %w", i, err)
			}
			e.StartsAt = start
			e.EndsAt = end
		}

		events = append(events, e)
	}
	return events, nil
}

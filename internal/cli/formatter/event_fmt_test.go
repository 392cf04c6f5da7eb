package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/workcal/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatEventList(t *testing.T) {
	events := []*domain.CalendarEvent{
		{
			ID:       "0123456789abcdef",
			Summary:  "Seminar",
			StartsAt: time.Date(2025, 5, 5, 10, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2025, 5, 5, 11, 30, 0, 0, time.UTC),
			Source:   domain.SourceManual,
		},
		{
			ID:       "fedcba9876543210",
			Summary:  "Holiday",
			StartsAt: time.Date(2025, 5, 8, 0, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2025, 5, 9, 0, 0, 0, 0, time.UTC),
			AllDay:   true,
			Source:   "semester",
		},
	}
	out := FormatEventList(events, time.UTC)

	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "Mon 2025-05-05 10:00-11:30")
	assert.Contains(t, out, "1.5h")
	assert.Contains(t, out, "Thu 2025-05-08 all day")
	assert.Contains(t, out, "semester")
}

func TestFormatEventList_Empty(t *testing.T) {
	assert.Contains(t, FormatEventList(nil, time.UTC), "No events found.")
}

func TestFormatImportResult(t *testing.T) {
	out := FormatImportResult("semester", 3, 2)
	assert.Contains(t, out, "Imported 3 events from semester")
	assert.Contains(t, out, "Replaced 2 events")
	assert.NotContains(t, FormatImportResult("x", 1, 0), "Replaced")
}

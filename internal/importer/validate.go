package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/workcal/internal/domain"
)

// LocalTimeLayout is the minute-precision form accepted next to RFC 3339.
const LocalTimeLayout = "2006-01-02 15:04"

// ParseInstant accepts RFC 3339 or LocalTimeLayout read in loc.
func ParseInstant(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(LocalTimeLayout, s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q (expected RFC 3339 or YYYY-MM-DD HH:MM)", s)
}

// ValidateImportSchema checks the whole file and returns every problem found.
func ValidateImportSchema(schema *ImportSchema, loc *time.Location) []error {
	var errs []error

	if len(schema.Events) == 0 {
		errs = append(errs, fmt.Errorf("events: at least one event is required"))
	}
	for i := range schema.Events {
		errs = append(errs, validateEvent(i, &schema.Events[i], loc)...)
	}
	return errs
}

func validateEvent(i int, e *EventImport, loc *time.Location) []error {
	var errs []error
	prefix := fmt.Sprintf("events[%d]", i)

	if e.Summary == "" {
		errs = append(errs, fmt.Errorf("%s.summary is required", prefix))
	}

	if domain.BoolFromPtrWithDefault(false, e.AllDay) {
		if e.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required for all-day events", prefix))
		} else if _, err := domain.ParseDate(e.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: %w", prefix, err))
		}
		return errs
	}

	if e.Start == "" {
		errs = append(errs, fmt.Errorf("%s.start is required", prefix))
	}
	if e.End == "" {
		errs = append(errs, fmt.Errorf("%s.end is required", prefix))
	}
	if e.Start == "" || e.End == "" {
		return errs
	}

	start, startErr := ParseInstant(e.Start, loc)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("%s.start: %w", prefix, startErr))
	}
	end, endErr := ParseInstant(e.End, loc)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("%s.end: %w", prefix, endErr))
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, fmt.Errorf("%s: end %q is before start %q", prefix, e.End, e.Start))
	}
	return errs
}

package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format accepted on every input surface.
const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar day, read in t's own location, and
// returns that day as midnight UTC. Two instants on the same local day map
// to equal values.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// DateKey formats a calendar day as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return DateOf(t).Format(DateLayout)
}

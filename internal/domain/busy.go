package domain

import "time"

// BusyInterval is a pre-existing commitment on a calendar day.
type BusyInterval struct {
	Summary       string
	Date          time.Time
	DurationHours float64
}

package domain

import (
	"fmt"
	"time"
)

// DayRecord is one calendar day of a schedule.
type DayRecord struct {
	Date         time.Time
	Weekday      time.Weekday
	HoursPlanned float64
	HoursToWork  int
}

// Schedule is a date-ascending sequence of days with no duplicate dates.
type Schedule []DayRecord

// TotalPlanned sums HoursPlanned over every day.
func (s Schedule) TotalPlanned() float64 {
	var total float64
	for _, d := range s {
		total += d.HoursPlanned
	}
	return total
}

// TotalWork sums HoursToWork over every day.
func (s Schedule) TotalWork() int {
	total := 0
	for _, d := range s {
		total += d.HoursToWork
	}
	return total
}

// Clone returns a copy that shares no backing array with s.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	copy(out, s)
	return out
}

// Validate reports the first pair of days that breaks strict date ordering.
func (s Schedule) Validate() error {
	for i := 1; i < len(s); i++ {
		if !s[i].Date.After(s[i-1].Date) {
			return fmt.Errorf("schedule day %d (%s) does not follow %s",
				i, DateKey(s[i].Date), DateKey(s[i-1].Date))
		}
	}
	return nil
}

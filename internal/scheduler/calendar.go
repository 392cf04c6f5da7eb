package scheduler

import (
	"time"

	"github.com/alexanderramin/workcal/internal/domain"
)

// CalendarBuild is the output of BuildSchedule.
type CalendarBuild struct {
	Schedule          domain.Schedule
	TotalPlannedHours float64
}

// DayCount is the number of days retained in the schedule.
func (c CalendarBuild) DayCount() int {
	return len(c.Schedule)
}

// BuildSchedule expands [start, submission] into one DayRecord per calendar
// day, summing the busy intervals that fall on each day. Sundays are dropped
// when includeSunday is false. A start after submission yields an empty
// schedule.
func BuildSchedule(intervals []domain.BusyInterval, start, submission time.Time, includeSunday bool) CalendarBuild {
	busy := busyByDay(intervals)

	var build CalendarBuild
	last := domain.DateOf(submission)
	for day := domain.DateOf(start); !day.After(last); day = day.AddDate(0, 0, 1) {
		if !includeSunday && day.Weekday() == time.Sunday {
			continue
		}
		planned := busy[domain.DateKey(day)]
		if planned < 0 {
			planned = 0
		}
		build.Schedule = append(build.Schedule, domain.DayRecord{
			Date:         day,
			Weekday:      day.Weekday(),
			HoursPlanned: planned,
		})
		build.TotalPlannedHours += planned
	}
	return build
}

func busyByDay(intervals []domain.BusyInterval) map[string]float64 {
	sums := make(map[string]float64, len(intervals))
	for _, iv := range intervals {
		sums[domain.DateKey(iv.Date)] += iv.DurationHours
	}
	return sums
}

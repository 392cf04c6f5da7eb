package scheduler

import "github.com/alexanderramin/workcal/internal/domain"

// Allocate spreads hoursRequired over the schedule by forward average pacing:
// each day takes an equal share of what is left, clamped to the day's spare
// hours and never below zero. Allocation stops once the required hours are
// covered. The input schedule is not modified.
func Allocate(schedule domain.Schedule, hoursRequired int, budget Budget) domain.Schedule {
	out := schedule.Clone()
	for i := range out {
		out[i].HoursToWork = 0
	}
	if hoursRequired <= 0 {
		return out
	}

	remaining := hoursRequired
	worked := 0
	for i := range out {
		remainingDays := len(out) - i
		target := remaining / remainingDays

		// Truncating conversion, not rounding.
		spare := int(budget.AwakeHours() - out[i].HoursPlanned)
		if spare-target < 0 {
			target = spare
		}
		if target < 0 {
			target = 0
		}

		out[i].HoursToWork = target
		remaining -= target
		worked += target
		if worked >= hoursRequired {
			break
		}
	}
	return out
}

// Shortfall is the part of hoursRequired the allocation could not place.
func Shortfall(schedule domain.Schedule, hoursRequired int) int {
	left := hoursRequired - schedule.TotalWork()
	if left < 0 {
		return 0
	}
	return left
}

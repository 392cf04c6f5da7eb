package scheduler

import "github.com/alexanderramin/workcal/internal/domain"

// Feasibility is the aggregate check of whether the required hours fit into
// the waking time left over by existing plans.
type Feasibility struct {
	DayCount       int
	AvailableHours float64
	HoursRequired  int
	Verdict        domain.Verdict
}

// OnTime reports whether the verdict is on_time.
func (f Feasibility) OnTime() bool {
	return f.Verdict == domain.VerdictOnTime
}

// CheckFeasibility compares the schedule's total free time with the hours
// required. The verdict is advisory; allocation runs regardless.
func CheckFeasibility(schedule domain.Schedule, totalPlannedHours float64, hoursRequired int, budget Budget) Feasibility {
	available := budget.AwakeHours()*float64(len(schedule)) - totalPlannedHours

	verdict := domain.VerdictMustRevise
	if available > float64(hoursRequired) {
		verdict = domain.VerdictOnTime
	}

	return Feasibility{
		DayCount:       len(schedule),
		AvailableHours: available,
		HoursRequired:  hoursRequired,
		Verdict:        verdict,
	}
}

// OverloadedDays returns the days whose plans plus sleep exceed the day.
func OverloadedDays(schedule domain.Schedule, budget Budget) []domain.DayRecord {
	var out []domain.DayRecord
	for _, d := range schedule {
		if budget.AvailableHours(d.HoursPlanned) < 0 {
			out = append(out, d)
		}
	}
	return out
}

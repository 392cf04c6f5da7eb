package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/workcal/internal/app"
	"github.com/alexanderramin/workcal/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func samplePlan() *app.PlanResponse {
	return &app.PlanResponse{
		Today:          day(10),
		SubmissionDate: day(12),
		IncludeSunday:  true,
		Budget:         app.BudgetView{HoursPerDay: 24, SleepingHours: 8},
		BusyIntervals: []domain.BusyInterval{
			{Summary: "Conference", Date: day(10), DurationHours: 17},
			{Summary: "Holiday", Date: day(12), DurationHours: 0},
		},
		Schedule: domain.Schedule{
			{Date: day(10), Weekday: time.Monday, HoursPlanned: 17, HoursToWork: 0},
			{Date: day(11), Weekday: time.Tuesday, HoursPlanned: 0, HoursToWork: 15},
			{Date: day(12), Weekday: time.Wednesday, HoursPlanned: 0, HoursToWork: 15},
		},
		TotalPlannedHours: 17,
		Feasibility: app.FeasibilitySummary{
			DayCount:       3,
			AvailableHours: 31,
			HoursRequired:  30,
			Verdict:        domain.VerdictOnTime,
		},
		OverloadedDays: []domain.DayRecord{{Date: day(10), HoursPlanned: 17}},
		AllocatedHours: 30,
		Warnings:       []string{"1 day(s) are already booked beyond waking hours"},
	}
}

func TestFormatPlan(t *testing.T) {
	out := FormatPlan(samplePlan())

	assert.Contains(t, out, "Mon 2025-03-10")
	assert.Contains(t, out, "COLLECTED PLANS")
	assert.Contains(t, out, "Conference")
	assert.Contains(t, out, "all day")
	assert.Contains(t, out, "You have 3 days and 31h possible to work.")
	assert.Contains(t, out, "You need 30h to finish your work.")
	assert.Contains(t, out, "ON TIME")
	assert.Contains(t, out, "is booked 17h, 1h beyond waking time")
	assert.Contains(t, out, "WORK PLAN")
	assert.Contains(t, out, "Allocated 30h of 30h.")
	assert.Contains(t, out, "already booked beyond waking hours")
}

func TestFormatPlan_EmptyScheduleAndShortfall(t *testing.T) {
	resp := &app.PlanResponse{
		Today:          day(10),
		SubmissionDate: day(1),
		IncludeSunday:  false,
		Budget:         app.BudgetView{HoursPerDay: 24, SleepingHours: 8},
		Feasibility:    app.FeasibilitySummary{HoursRequired: 10, Verdict: domain.VerdictMustRevise},
		ShortfallHours: 10,
	}
	out := FormatPlan(resp)

	assert.Contains(t, out, "Sundays are left free.")
	assert.Contains(t, out, "No upcoming events found.")
	assert.Contains(t, out, "No days between today and the submission date.")
	assert.Contains(t, out, "REVISE SCHEDULE")
	assert.Contains(t, out, "10h could not be placed.")
	assert.NotContains(t, out, "WORK PLAN")
}

func TestFormatAllocation_RunningTotals(t *testing.T) {
	out := FormatAllocation(samplePlan().Schedule, 30)
	assert.Regexp(t, `Tue 2025-03-11\s+15\s+15\s+15`, out)
	assert.Regexp(t, `Wed 2025-03-12\s+15\s+30\s+0`, out)
}

func TestFormatIntro(t *testing.T) {
	assert.Contains(t, FormatIntro(), "enough time to finish")
}

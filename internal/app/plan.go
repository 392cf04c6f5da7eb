package app

import (
	"time"

	"github.com/alexanderramin/workcal/internal/domain"
)

type PlanRequest struct {
	// Today defaults to the current local day.
	Today          *time.Time
	SubmissionDate time.Time
	IncludeSunday  bool
	HoursRequired  int
}

func NewPlanRequest(submission time.Time, hoursRequired int) PlanRequest {
	return PlanRequest{
		SubmissionDate: submission,
		HoursRequired:  hoursRequired,
		IncludeSunday:  true,
	}
}

// Validate reports request errors the planner cannot recover from. A
// non-positive hour count or a past submission date are not errors; they
// produce an all-zero or empty plan.
func (r PlanRequest) Validate() error {
	if r.SubmissionDate.IsZero() {
		return &PlanError{Code: PlanErrMissingSubmission, Message: "submission date is required"}
	}
	return nil
}

type BudgetView struct {
	HoursPerDay   float64
	SleepingHours float64
}

type FeasibilitySummary struct {
	DayCount       int
	AvailableHours float64
	HoursRequired  int
	Verdict        domain.Verdict
}

type PlanResponse struct {
	GeneratedAt       time.Time
	Today             time.Time
	SubmissionDate    time.Time
	IncludeSunday     bool
	Budget            BudgetView
	BusyIntervals     []domain.BusyInterval
	Schedule          domain.Schedule
	TotalPlannedHours float64
	Feasibility       FeasibilitySummary
	OverloadedDays    []domain.DayRecord
	AllocatedHours    int
	ShortfallHours    int
	Warnings          []string
}

type PlanErrorCode string

const (
	PlanErrMissingSubmission PlanErrorCode = "MISSING_SUBMISSION_DATE"
	PlanErrInvalidBudget     PlanErrorCode = "INVALID_BUDGET"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

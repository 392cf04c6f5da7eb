package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/workcal/internal/app"
	"github.com/alexanderramin/workcal/internal/calendar"
	"github.com/alexanderramin/workcal/internal/domain"
	"github.com/alexanderramin/workcal/internal/scheduler"
)

type planService struct {
	events   calendar.EventLister
	budget   scheduler.Budget
	loc      *time.Location
	observer UseCaseObserver
}

// NewPlanService builds plans from the events in events. Calendar days are
// taken in loc; nil means time.Local.
func NewPlanService(events calendar.EventLister, budget scheduler.Budget, loc *time.Location, observers ...UseCaseObserver) PlanService {
	if loc == nil {
		loc = time.Local
	}
	return &planService{
		events:   events,
		budget:   budget,
		loc:      loc,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Plan(ctx context.Context, req app.PlanRequest) (resp *app.PlanResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"hours_required": req.HoursRequired,
		"include_sunday": req.IncludeSunday,
	}
	defer func() {
		observe(ctx, s.observer, "plan", startedAt, fields, err)
	}()

	if err = req.Validate(); err != nil {
		return nil, err
	}
	if verr := s.budget.Validate(); verr != nil {
		err = &app.PlanError{Code: app.PlanErrInvalidBudget, Message: verr.Error()}
		return nil, err
	}

	now := time.Now().In(s.loc)
	if req.Today != nil {
		now = *req.Today
	}
	today := domain.DateOf(now)
	submission := domain.DateOf(req.SubmissionDate)
	fields["submission"] = domain.DateKey(submission)

	var intervals []domain.BusyInterval
	_, intervals, err = calendar.Collect(ctx, s.events, today, submission, s.loc)
	if err != nil {
		return nil, err
	}

	build := scheduler.BuildSchedule(intervals, today, submission, req.IncludeSunday)
	feas := scheduler.CheckFeasibility(build.Schedule, build.TotalPlannedHours, req.HoursRequired, s.budget)
	overloaded := scheduler.OverloadedDays(build.Schedule, s.budget)
	allocated := scheduler.Allocate(build.Schedule, req.HoursRequired, s.budget)
	shortfall := scheduler.Shortfall(allocated, max(req.HoursRequired, 0))

	fields["days"] = build.DayCount()
	fields["verdict"] = string(feas.Verdict)
	fields["shortfall"] = shortfall

	return &app.PlanResponse{
		GeneratedAt:    time.Now().UTC(),
		Today:          today,
		SubmissionDate: submission,
		IncludeSunday:  req.IncludeSunday,
		Budget: app.BudgetView{
			HoursPerDay:   s.budget.HoursPerDay,
			SleepingHours: s.budget.SleepingHours,
		},
		BusyIntervals:     intervals,
		Schedule:          allocated,
		TotalPlannedHours: build.TotalPlannedHours,
		Feasibility: app.FeasibilitySummary{
			DayCount:       feas.DayCount,
			AvailableHours: feas.AvailableHours,
			HoursRequired:  feas.HoursRequired,
			Verdict:        feas.Verdict,
		},
		OverloadedDays: overloaded,
		AllocatedHours: allocated.TotalWork(),
		ShortfallHours: shortfall,
		Warnings:       planWarnings(today, submission, req.HoursRequired, len(overloaded), shortfall),
	}, nil
}

func planWarnings(today, submission time.Time, hoursRequired, overloaded, shortfall int) []string {
	var warnings []string
	if submission.Before(today) {
		warnings = append(warnings, fmt.Sprintf("submission date %s is before today (%s); there are no days to plan",
			domain.DateKey(submission), domain.DateKey(today)))
	}
	if hoursRequired <= 0 {
		warnings = append(warnings, "no hours required; nothing was allocated")
	}
	if overloaded > 0 {
		warnings = append(warnings, fmt.Sprintf("%d day(s) are already booked beyond waking hours", overloaded))
	}
	if shortfall > 0 {
		warnings = append(warnings, fmt.Sprintf("%d hour(s) could not be placed before the submission date", shortfall))
	}
	return warnings
}

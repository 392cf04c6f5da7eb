package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/workcal/internal/app"
	"github.com/alexanderramin/workcal/internal/domain"
)

// FormatIntro explains what the planner does. It is shown before any input
// is collected.
func FormatIntro() string {
	lines := []string{
		"workcal estimates whether you will have enough time to finish a piece of work, such as a thesis.",
		"Your existing plans are read from the calendar and subtracted from your waking hours.",
		"The remaining time is compared with the hours the work needs.",
		"Finally the hours are spread over the days left, so you know how much to work each day.",
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(Dim(" * " + l))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPlan renders a full planning result: collected plans, the calendar,
// feasibility, overloaded days and the per-day allocation.
func FormatPlan(resp *app.PlanResponse) string {
	var b strings.Builder
	awake := resp.Budget.HoursPerDay - resp.Budget.SleepingHours

	b.WriteString(fmt.Sprintf("%s %s → %s %s\n\n",
		Bold("Planning"),
		FormatDay(resp.Today),
		FormatDay(resp.SubmissionDate),
		Dim("("+RelativeDateFrom(resp.SubmissionDate, resp.Today)+")"),
	))
	if !resp.IncludeSunday {
		b.WriteString(Dim("Sundays are left free.") + "\n\n")
	}

	b.WriteString(formatBusyIntervals(resp.BusyIntervals))
	b.WriteString("\n")

	if len(resp.Schedule) == 0 {
		b.WriteString(Dim("No days between today and the submission date.") + "\n\n")
	} else {
		b.WriteString(formatCalendar(resp.Schedule, awake))
		b.WriteString("\n")
	}

	b.WriteString(FormatFeasibility(resp.Feasibility))
	b.WriteString("\n")

	if len(resp.OverloadedDays) > 0 {
		b.WriteString("\n")
		for _, d := range resp.OverloadedDays {
			b.WriteString(StyleRed.Render(fmt.Sprintf("⚠ %s is booked %s, %s beyond waking time",
				FormatDay(d.Date), FormatHours(d.HoursPlanned), FormatHours(d.HoursPlanned-awake))))
			b.WriteString("\n")
		}
	}

	if len(resp.Schedule) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatAllocation(resp.Schedule, resp.Feasibility.HoursRequired))
	}

	summary := fmt.Sprintf("Allocated %s of %s.", FormatHours(float64(resp.AllocatedHours)), FormatHours(float64(max(resp.Feasibility.HoursRequired, 0))))
	if resp.ShortfallHours > 0 {
		b.WriteString("\n" + StyleYellow.Render(summary+" "+FormatHours(float64(resp.ShortfallHours))+" could not be placed.") + "\n")
	} else {
		b.WriteString("\n" + StyleGreen.Render(summary) + "\n")
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render("! ") + Dim(w) + "\n")
		}
	}
	return b.String()
}

func formatBusyIntervals(intervals []domain.BusyInterval) string {
	var b strings.Builder
	b.WriteString(Header("Collected plans"))
	b.WriteString("\n")
	if len(intervals) == 0 {
		b.WriteString(Dim("No upcoming events found.") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(intervals))
	for _, iv := range intervals {
		hours := FormatHours(iv.DurationHours)
		if iv.DurationHours == 0 {
			hours = Dim("all day")
		}
		rows = append(rows, []string{FormatDay(iv.Date), hours, iv.Summary})
	}
	b.WriteString(RenderAlignedTable([]string{"DATE", "HOURS", "EVENT"}, []Align{AlignLeft, AlignRight}, rows))
	return b.String()
}

func formatCalendar(schedule domain.Schedule, awake float64) string {
	var b strings.Builder
	b.WriteString(Header("Calendar"))
	b.WriteString("\n")
	rows := make([][]string, 0, len(schedule))
	for _, d := range schedule {
		free := awake - d.HoursPlanned
		rows = append(rows, []string{
			FormatDay(d.Date),
			FormatHours(d.HoursPlanned),
			AvailableColor(free, awake).Render(FormatHours(free)),
		})
	}
	b.WriteString(RenderAlignedTable([]string{"DATE", "PLANNED", "FREE"}, []Align{AlignLeft, AlignRight, AlignRight}, rows))
	return b.String()
}

// FormatFeasibility renders the verdict box.
func FormatFeasibility(f app.FeasibilitySummary) string {
	var body strings.Builder
	body.WriteString(fmt.Sprintf("You have %s and %s possible to work.\n",
		Plural(f.DayCount, "day", "days"), FormatHours(f.AvailableHours)))
	body.WriteString(fmt.Sprintf("You need %s to finish your work.\n\n", FormatHours(float64(f.HoursRequired))))
	body.WriteString(VerdictIndicator(f.Verdict))
	if f.Verdict == domain.VerdictOnTime {
		body.WriteString("  " + Dim("You should finish your work on time."))
	} else {
		body.WriteString("  " + Dim("You have to review your schedule."))
	}
	return RenderBox("Feasibility", body.String())
}

// FormatAllocation renders the per-day work table with running totals of
// hours worked and hours left.
func FormatAllocation(schedule domain.Schedule, hoursRequired int) string {
	var b strings.Builder
	b.WriteString(Header("Work plan"))
	b.WriteString("\n")

	worked := 0
	rows := make([][]string, 0, len(schedule))
	for _, d := range schedule {
		worked += d.HoursToWork
		left := max(hoursRequired-worked, 0)
		work := strconv.Itoa(d.HoursToWork)
		if d.HoursToWork == 0 {
			work = Dim(work)
		}
		rows = append(rows, []string{
			FormatDay(d.Date),
			work,
			strconv.Itoa(worked),
			strconv.Itoa(left),
		})
	}
	b.WriteString(RenderAlignedTable(
		[]string{"DATE", "WORK", "WORKED", "LEFT"},
		[]Align{AlignLeft, AlignRight, AlignRight, AlignRight},
		rows,
	))
	return b.String()
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/workcal/internal/domain"
)

// FormatEventList renders stored events in loc.
func FormatEventList(events []*domain.CalendarEvent, loc *time.Location) string {
	if len(events) == 0 {
		return Dim("No events found.") + "\n"
	}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			TruncID(e.ID),
			formatEventWhen(e, loc),
			FormatHours(e.Duration().Hours()),
			e.Summary,
			Dim(string(e.Source)),
		})
	}
	return RenderAlignedTable(
		[]string{"ID", "WHEN", "HOURS", "SUMMARY", "SOURCE"},
		[]Align{AlignLeft, AlignLeft, AlignRight},
		rows,
	)
}

// FormatEventCreated confirms a new event.
func FormatEventCreated(e *domain.CalendarEvent, loc *time.Location) string {
	return fmt.Sprintf("%s %s %s %s\n",
		StyleGreen.Render("Added"),
		Bold(e.Summary),
		Dim(formatEventWhen(e, loc)),
		TruncID(e.ID),
	)
}

// FormatEventDeleted confirms a removed event.
func FormatEventDeleted(e *domain.CalendarEvent, loc *time.Location) string {
	return fmt.Sprintf("%s %s %s\n", StyleRed.Render("Removed"), Bold(e.Summary), Dim(formatEventWhen(e, loc)))
}

// FormatImportResult summarizes an events import.
func FormatImportResult(source string, imported, replaced int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s from %s\n",
		StyleGreen.Render("Imported"), Plural(imported, "event", "events"), Bold(source)))
	if replaced > 0 {
		b.WriteString(Dim(fmt.Sprintf("Replaced %s from the previous import.", Plural(replaced, "event", "events"))) + "\n")
	}
	return b.String()
}

func formatEventWhen(e *domain.CalendarEvent, loc *time.Location) string {
	start := e.StartsAt.In(loc)
	if e.AllDay {
		return start.Format("Mon 2006-01-02") + " all day"
	}
	end := e.EndsAt.In(loc)
	if domain.DateKey(start) == domain.DateKey(end) {
		return start.Format("Mon 2006-01-02 15:04") + "-" + end.Format("15:04")
	}
	return start.Format("Mon 2006-01-02 15:04") + " → " + end.Format("2006-01-02 15:04")
}

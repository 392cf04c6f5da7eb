package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/workcal/internal/cli/formatter"
	"github.com/alexanderramin/workcal/internal/domain"
	"github.com/alexanderramin/workcal/internal/importer"
	"github.com/spf13/cobra"
)

func newEventCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage the calendar the planner reads",
	}
	cmd.AddCommand(
		newEventAddCmd(a),
		newEventListCmd(a),
		newEventRemoveCmd(a),
		newEventImportCmd(a),
	)
	return cmd
}

func newEventAddCmd(a *App) *cobra.Command {
	var summary, start, end, date string
	var allDay bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event",
		Example: `  workcal event add --summary "Lectures" --start "2025-03-14 09:00" --end "2025-03-14 13:00"
  workcal event add --summary "Holiday" --all-day --date 2025-03-17`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := a.location()
			e := &domain.CalendarEvent{Summary: summary, AllDay: allDay}

			if allDay {
				if date == "" {
					return errors.New("--date is required with --all-day")
				}
				d, err := time.ParseInLocation(domain.DateLayout, date, loc)
				if err != nil {
					return fmt.Errorf("--date: invalid date %q (expected YYYY-MM-DD)", date)
				}
				e.StartsAt = d
				e.EndsAt = d.AddDate(0, 0, 1)
			} else {
				if start == "" || end == "" {
					return errors.New("--start and --end are required for timed events")
				}
				s, err := importer.ParseInstant(start, loc)
				if err != nil {
					return fmt.Errorf("--start: %w", err)
				}
				f, err := importer.ParseInstant(end, loc)
				if err != nil {
					return fmt.Errorf("--end: %w", err)
				}
				e.StartsAt, e.EndsAt = s, f
			}

			if err := a.Events.Add(cmd.Context(), e); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEventCreated(e, loc))
			return nil
		},
	}

	cmd.Flags().StringVar(&summary, "summary", "", "Event title")
	cmd.Flags().StringVar(&start, "start", "", `Start time ("YYYY-MM-DD HH:MM" or RFC 3339)`)
	cmd.Flags().StringVar(&end, "end", "", `End time ("YYYY-MM-DD HH:MM" or RFC 3339)`)
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day event (takes no working hours)")
	cmd.Flags().StringVar(&date, "date", "", "Day of an all-day event (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("summary")

	return cmd
}

func newEventListCmd(a *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List events, optionally limited to a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				events []*domain.CalendarEvent
				err    error
			)
			if from == "" && to == "" {
				events, err = a.Events.List(cmd.Context())
			} else {
				first, last, perr := parseRange(from, to)
				if perr != nil {
					return perr
				}
				events, err = a.Events.ListBetween(cmd.Context(), first, last)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEventList(events, a.location()))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day (YYYY-MM-DD, default: --to)")
	cmd.Flags().StringVar(&to, "to", "", "Last day (YYYY-MM-DD, default: --from)")

	return cmd
}

// parseRange fills a missing bound with the other, giving a one-day range.
func parseRange(from, to string) (time.Time, time.Time, error) {
	if from == "" {
		from = to
	}
	if to == "" {
		to = from
	}
	first, err := domain.ParseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--from: %w", err)
	}
	last, err := domain.ParseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--to: %w", err)
	}
	return first, last, nil
}

func newEventRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove an event by ID or ID prefix",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.Events.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEventDeleted(e, a.location()))
			return nil
		},
	}
}

func newEventImportCmd(a *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import events from a JSON file",
		Long: "Imports events from a JSON file of the form\n" +
			`  {"source": "semester", "events": [{"summary": "...", "start": "...", "end": "..."}]}` + "\n" +
			"All-day events use \"all_day\": true and \"date\". With --replace, events\n" +
			"from an earlier import with the same source are removed first.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Import.ImportEvents(cmd.Context(), args[0], replace)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(string(result.Source), result.EventCount, result.ReplacedCount))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace events from an earlier import of the same source")

	return cmd
}

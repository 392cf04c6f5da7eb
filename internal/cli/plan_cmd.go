package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/workcal/internal/app"
	"github.com/alexanderramin/workcal/internal/cli/formatter"
	"github.com/alexanderramin/workcal/internal/domain"
	"github.com/spf13/cobra"
)

// planInputs holds the raw answers, whether they came from flags or prompts.
type planInputs struct {
	Due    string
	Hours  string
	Sunday bool
}

func newPlanCmd(a *App) *cobra.Command {
	var (
		due    string
		hours  int
		sunday string
		today  string
		view   bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Check feasibility and spread the required hours over the days left",
		Long: "Reads your calendar from today through the submission date, compares the\n" +
			"free waking hours with the hours the work needs, and schedules how many\n" +
			"hours to work each day. Missing inputs are asked for when run in a terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatIntro())

			in := planInputs{Due: due, Sunday: a.IncludeSunday}
			if cmd.Flags().Changed("hours") {
				in.Hours = strconv.Itoa(hours)
			}
			askSunday := true
			if cmd.Flags().Changed("sunday") {
				v, err := app.ParseSundayAnswer(sunday)
				if err != nil {
					return err
				}
				in.Sunday = v
				askSunday = false
			}

			if in.Due == "" || in.Hours == "" {
				if !a.Interactive {
					return errors.New("--due and --hours are required when not running in a terminal")
				}
				if err := planInputForm(&in, askSunday).Run(); err != nil {
					return err
				}
			}

			submission, err := app.ParseSubmissionDate(in.Due)
			if err != nil {
				return err
			}
			required, err := app.ParseHoursRequired(in.Hours)
			if err != nil {
				return err
			}

			req := app.NewPlanRequest(submission, required)
			req.IncludeSunday = in.Sunday
			if today != "" {
				t, err := domain.ParseDate(today)
				if err != nil {
					return fmt.Errorf("--today: %w", err)
				}
				req.Today = &t
			}

			resp, err := a.Plan.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}

			text := formatter.FormatPlan(resp)
			if view && a.Interactive {
				return runPlanViewer(text)
			}
			fmt.Fprint(out, text)
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Submission date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&hours, "hours", 0, "Hours needed to finish the work")
	cmd.Flags().StringVar(&sunday, "sunday", "", "Work on Sundays: Y or N (default from config)")
	cmd.Flags().StringVar(&today, "today", "", "Plan as if today were this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&view, "view", false, "Open the result in a scrollable viewer")

	return cmd
}

package cli

import (
	"github.com/alexanderramin/workcal/internal/app"
	"github.com/alexanderramin/workcal/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// workcalHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func workcalHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateSubmissionDate(s string) error {
	_, err := app.ParseSubmissionDate(s)
	return err
}

func validateHoursRequired(s string) error {
	_, err := app.ParseHoursRequired(s)
	return err
}

// planInputForm asks for whatever plan inputs are still empty. Each field
// re-prompts until its value parses.
func planInputForm(in *planInputs, askSunday bool) *huh.Form {
	var fields []huh.Field
	if in.Due == "" {
		fields = append(fields, huh.NewInput().
			Title("Submission date").
			Description("The last day you can work, YYYY-MM-DD").
			Placeholder("2025-06-30").
			Value(&in.Due).
			Validate(validateSubmissionDate))
	}
	if askSunday {
		fields = append(fields, huh.NewConfirm().
			Title("Do you plan to work on Sundays?").
			Affirmative("Yes").
			Negative("No").
			Value(&in.Sunday))
	}
	if in.Hours == "" {
		fields = append(fields, huh.NewInput().
			Title("How many hours do you need to finish the work?").
			Placeholder("120").
			Value(&in.Hours).
			Validate(validateHoursRequired))
	}
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(workcalHuhTheme()).
		WithShowHelp(false)
}

package cli

import (
	"time"

	"github.com/alexanderramin/workcal/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GlobalOptions carries the persistent flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Debug      bool
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plan   service.PlanService
	Events service.EventService
	Import service.ImportService

	// Location decides calendar-day boundaries for input and output.
	Location *time.Location
	// IncludeSunday answers the Sunday question when neither the flag nor a
	// prompt supplies one.
	IncludeSunday bool
	// Interactive enables huh prompts for missing plan inputs.
	Interactive bool

	// Init, when set, runs before any command with the parsed global flags
	// and is expected to fill in the services above.
	Init func(opts GlobalOptions) error
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

// NewRootCmd creates the top-level "workcal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var opts GlobalOptions

	root := &cobra.Command{
		Use:           "workcal",
		Short:         "Check whether your work fits before the deadline and plan it day by day",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Init == nil {
				return nil
			}
			return app.Init(opts)
		},
	}

	bindGlobalFlags(root.PersistentFlags(), &opts)

	root.AddCommand(
		newPlanCmd(app),
		newEventCmd(app),
	)

	return root
}

func bindGlobalFlags(fs *pflag.FlagSet, opts *GlobalOptions) {
	fs.StringVar(&opts.ConfigPath, "config", "", "Config file (YAML or JSON, default ~/.workcal/config.yaml)")
	fs.BoolVar(&opts.Debug, "debug", false, "Log debug output to stderr")
}

package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/workcal/internal/cli"
	"github.com/alexanderramin/workcal/internal/config"
	"github.com/alexanderramin/workcal/internal/db"
	"github.com/alexanderramin/workcal/internal/logger"
	"github.com/alexanderramin/workcal/internal/repository"
	"github.com/alexanderramin/workcal/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		logger.Error("command failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
		logger.Close()
	}()

	app := &cli.App{
		Location:    time.Local,
		Interactive: isTerminal(os.Stdin) && isTerminal(os.Stdout),
	}

	// Wiring waits for cobra to parse --config and --debug.
	app.Init = func(opts cli.GlobalOptions) error {
		path := opts.ConfigPath
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if err := logger.Init(logger.Config{Debug: cfg.Log.Debug || opts.Debug, Dir: cfg.Log.Dir}); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger.Debug("config loaded", "path", path, "db", cfg.DBPath, "budget", cfg.Budget)

		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}

		events := repository.NewSQLiteEventRepo(database)
		uow := db.NewSQLiteUnitOfWork(database)
		observer := service.NewLogUseCaseObserver(logger.L())

		app.Plan = service.NewPlanService(events, cfg.SchedulerBudget(), app.Location, observer)
		app.Events = service.NewEventService(events, app.Location)
		app.Import = service.NewImportService(uow, app.Location, observer)
		app.IncludeSunday = cfg.Plan.IncludeSunday
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

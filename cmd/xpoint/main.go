package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/xpoint/internal/cli"
	"github.com/alexanderramin/xpoint/internal/config"
	"github.com/alexanderramin/xpoint/internal/db"
	"github.com/alexanderramin/xpoint/internal/repository"
	"github.com/alexanderramin/xpoint/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.Log.UseCases {
		level, err := cfg.LogLevel()
		if err != nil {
			return err
		}
		observer = service.NewLogUseCaseObserver(os.Stderr, level)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	entryRepo := repository.NewSQLiteTimeEntryRepo(database, loc)
	editRepo := repository.NewSQLiteEditRepo(database)

	// Wire unit of work for close/amend
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	projects := service.NewProjectService(projectRepo, nil, observer)
	entries := service.NewEntryService(entryRepo, editRepo, uow, loc, nil, observer)
	reports := service.NewReportService(projects, entries, loc, nil, observer)

	app := &cli.App{
		Projects:   projects,
		Entries:    entries,
		Reports:    reports,
		Location:   loc,
		ChartWidth: cfg.Chart.Width,
	}

	// Forms are only offered on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

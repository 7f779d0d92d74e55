package cli

import (
	"time"

	"github.com/alexanderramin/xpoint/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds the services and environment CLI commands run against.
type App struct {
	Projects service.ProjectService
	Entries  service.EntryService
	Reports  service.ReportService

	// Location interprets dates and clocks given on the command line.
	Location *time.Location
	// Now is the reference for defaults such as "today". Nil means time.Now.
	Now        func() time.Time
	ChartWidth int

	// IsInteractive reports whether stdin is a terminal, so forms may be shown.
	IsInteractive func() bool
	// RunForm runs a huh form. Tests replace it to fill in values.
	RunForm func(*huh.Form) error
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now().In(a.loc())
	}
	return a.Now().In(a.loc())
}

func (a *App) loc() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

func (a *App) chartWidth() int {
	if a.ChartWidth <= 0 {
		return 40
	}
	return a.ChartWidth
}

// NewRootCmd creates the top-level "xpoint" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "xpoint",
		Short:         "Personal time tracker with daily, weekly and monthly summaries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newEntryCmd(app),
		newStartCmd(app),
		newStopCmd(app),
		newReportCmd(app),
	)

	return root
}

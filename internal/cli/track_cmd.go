package cli

import (
	"fmt"

	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var project, at string
	var pause bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Open a work (or pause) entry today",
		Example: `  xpoint start -p "Client A"
  xpoint start -p "Client A" --pause --at 12:30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectOrRaw(ctx, app, project)
			if err != nil {
				return err
			}
			startAt, err := parseClockOn(app, domain.DateOf(app.now()), at)
			if err != nil {
				return err
			}
			e, err := app.Entries.Start(ctx, projectID, startAt, pause)
			if err != nil {
				return err
			}

			kind := "work"
			if pause {
				kind = "pause"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s at %s [%s]\n", kind, e.Start.Format(domain.ClockLayout), shortID(e.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Project ID, prefix or name")
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM, default now)")
	cmd.Flags().BoolVar(&pause, "pause", false, "Start a pause instead of work")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newStopCmd(app *App) *cobra.Command {
	var project, at string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Close every open entry of a project dated today",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectOrRaw(ctx, app, project)
			if err != nil {
				return err
			}
			stopAt, err := parseClockOn(app, domain.DateOf(app.now()), at)
			if err != nil {
				return err
			}
			closed, err := app.Entries.Stop(ctx, projectID, stopAt)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(closed) == 0 {
				fmt.Fprintln(out, "No open entries today.")
				return nil
			}
			for _, e := range closed {
				fmt.Fprintf(out, "Stopped %s-%s [%s]\n",
					e.Start.Format(domain.ClockLayout), domain.FormatClock(e.End), shortID(e.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Project ID, prefix or name")
	cmd.Flags().StringVar(&at, "at", "", "Stop time (HH:MM, default now)")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

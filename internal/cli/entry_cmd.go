package cli

import (
	"fmt"

	"github.com/alexanderramin/xpoint/internal/cli/formatter"
	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entry",
		Aliases: []string{"entries", "e"},
		Short:   "Record and inspect time entries",
	}

	cmd.AddCommand(
		newEntryAddCmd(app),
		newEntryCloseCmd(app),
		newEntryAmendCmd(app),
		newEntryListCmd(app),
		newEntryHistoryCmd(app),
	)

	return cmd
}

func newEntryAddCmd(app *App) *cobra.Command {
	var project, date, start, end string
	var pause bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a work or pause interval",
		Long: `Record a work or pause interval. Without --end the entry stays open and
counts up to the current time in reports until it is closed.`,
		Example: `  xpoint entry add --project "Client A" --date 2024-03-08 --start 09:00 --end 12:00
  xpoint entry add --project "Client A" --start 12:00 --end 13:00 --pause`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectOrRaw(ctx, app, project)
			if err != nil {
				return err
			}
			day, err := parseDate(app, date)
			if err != nil {
				return err
			}
			startAt, err := domain.AtClock(day, start)
			if err != nil {
				return err
			}

			e := &domain.TimeEntry{
				ProjectID: projectID,
				Date:      day,
				Start:     startAt,
				IsPause:   pause,
			}
			if end != "" {
				endAt, err := domain.AtClock(day, end)
				if err != nil {
					return err
				}
				e.End = &endAt
			}

			if err := app.Entries.Create(ctx, e); err != nil {
				return err
			}

			kind := "work"
			if pause {
				kind = "pause"
			}
			span := start + "-" + domain.FormatClock(e.End)
			if e.IsOpen() {
				span = start + " (open)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s on %s [%s]\n",
				kind, span, day.Format(domain.DateLayout), shortID(e.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Project ID, prefix or name")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM), omit to leave open")
	cmd.Flags().BoolVar(&pause, "pause", false, "Record a pause instead of work")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newEntryCloseCmd(app *App) *cobra.Command {
	var end string

	cmd := &cobra.Command{
		Use:   "close <entry-id>",
		Short: "Set the end time of an entry",
		Long:  "Set the end time of an entry. Every close is recorded in the entry's edit history.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := app.Entries.ResolveID(ctx, args[0])
			if err != nil {
				return err
			}
			e, err := app.Entries.GetByID(ctx, id)
			if err != nil {
				return err
			}
			endAt, err := parseClockOn(app, e.Date, end)
			if err != nil {
				return err
			}
			if err := app.Entries.Close(ctx, id, endAt); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Closed entry %s at %s\n", shortID(id), endAt.Format(domain.ClockLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, default now)")
	return cmd
}

func newEntryAmendCmd(app *App) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "amend <entry-id>",
		Short: "Correct the start time of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := app.Entries.ResolveID(ctx, args[0])
			if err != nil {
				return err
			}
			e, err := app.Entries.GetByID(ctx, id)
			if err != nil {
				return err
			}
			startAt, err := domain.AtClock(e.Date, start)
			if err != nil {
				return err
			}
			if err := app.Entries.Amend(ctx, id, startAt); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entry %s now starts at %s\n", shortID(id), start)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newEntryListCmd(app *App) *cobra.Command {
	var project, from, to string
	var openOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List entries of a project by date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectOrRaw(ctx, app, project)
			if err != nil {
				return err
			}

			var entries []*domain.TimeEntry
			if openOnly {
				entries, err = app.Entries.ListOpen(ctx, projectID)
			} else {
				day, perr := parseDate(app, from)
				if perr != nil {
					return perr
				}
				if to != "" {
					end, perr := parseDate(app, to)
					if perr != nil {
						return perr
					}
					entries, err = app.Entries.ForRange(ctx, projectID, day, &end)
				} else {
					entries, err = app.Entries.ForRange(ctx, projectID, day, nil)
				}
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntries(entries, app.now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Project ID, prefix or name")
	cmd.Flags().StringVar(&from, "date", "", "First date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&to, "to", "", "Last date (YYYY-MM-DD, default same as --date)")
	cmd.Flags().BoolVar(&openOnly, "open", false, "Only entries that are still open, any date")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newEntryHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history <entry-id>",
		Short: "Show the edit history of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := app.Entries.ResolveID(ctx, args[0])
			if err != nil {
				return err
			}
			records, err := app.Entries.History(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(records, app.now()))
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

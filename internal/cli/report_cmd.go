package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/xpoint/internal/app"
	"github.com/alexanderramin/xpoint/internal/chart"
	"github.com/alexanderramin/xpoint/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// reportFlags are shared by the day, week and month reports.
type reportFlags struct {
	project string
	format  *formatValue
	chart   bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	f.format = newFormatValue(formatText, formatJSON, formatCSV)
	cmd.Flags().StringVarP(&f.project, "project", "p", "", "Project ID, prefix or name")
	cmd.Flags().Var(f.format, "format", "Output format: text, json or csv")
	cmd.Flags().BoolVar(&f.chart, "chart", false, "Draw a chart (text format) or emit the chart dataset (json)")
	_ = cmd.MarkFlagRequired("project")
}

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"r"},
		Short:   "Summaries of worked hours against the target",
	}

	cmd.AddCommand(
		newReportDayCmd(app),
		newReportWeekCmd(app),
		newReportMonthCmd(app),
	)

	return cmd
}

func newReportDayCmd(a *App) *cobra.Command {
	var flags reportFlags
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Daily summary: total, pause and work hours with status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectOrRaw(ctx, a, flags.project)
			if err != nil {
				return err
			}
			day, err := parseDate(a, date)
			if err != nil {
				return err
			}
			now := a.now()
			s, err := a.Reports.Daily(ctx, app.DailyRequest{ProjectID: projectID, Date: day, Now: &now})
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), flags, chart.Daily(s), reportWriters{
				json: func(w io.Writer) error { return formatter.WriteJSON(w, formatter.DailyJSON(s)) },
				csv:  func(w io.Writer) error { return formatter.WriteDailyCSV(w, s) },
				text: func() string { return formatter.FormatDaily(s, a.chartWidth()) },
			}, a.chartWidth())
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	return cmd
}

func newReportWeekCmd(a *App) *cobra.Command {
	var flags reportFlags
	var start string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Seven consecutive days from --start",
		Long: `Seven consecutive days from --start (default: Monday of the current week).
The expected total is the daily target times seven, whichever days are work days.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectOrRaw(ctx, a, flags.project)
			if err != nil {
				return err
			}
			from := startOfWeek(a.now())
			if start != "" {
				if from, err = parseDate(a, start); err != nil {
					return err
				}
			}
			now := a.now()
			s, err := a.Reports.Weekly(ctx, app.WeeklyRequest{ProjectID: projectID, Start: from, Now: &now})
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), flags, chart.Weekly(s), reportWriters{
				json: func(w io.Writer) error { return formatter.WriteJSON(w, formatter.WeeklyJSON(s)) },
				csv:  func(w io.Writer) error { return formatter.WriteWeeklyCSV(w, s) },
				text: func() string { return formatter.FormatWeekly(s) },
			}, a.chartWidth())
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&start, "start", "", "First day (YYYY-MM-DD)")
	return cmd
}

func newReportMonthCmd(a *App) *cobra.Command {
	var flags reportFlags
	var month string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "7-day windows from the 1st of the month",
		Long: `7-day windows from the 1st of the month. The last window can run into the
next month. The expected total is the daily target times the days in the month.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			projectID, err := resolveProjectOrRaw(ctx, a, flags.project)
			if err != nil {
				return err
			}
			year, m, err := parseMonth(a, month)
			if err != nil {
				return err
			}
			now := a.now()
			s, err := a.Reports.Monthly(ctx, app.MonthlyRequest{ProjectID: projectID, Year: year, Month: m, Now: &now})
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), flags, chart.Monthly(s), reportWriters{
				json: func(w io.Writer) error { return formatter.WriteJSON(w, formatter.MonthlyJSON(s)) },
				csv:  func(w io.Writer) error { return formatter.WriteMonthlyCSV(w, s) },
				text: func() string { return formatter.FormatMonthly(s) },
			}, a.chartWidth())
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&month, "month", "", "Month (YYYY-MM, default current)")
	return cmd
}

type reportWriters struct {
	json func(io.Writer) error
	csv  func(io.Writer) error
	text func() string
}

func writeReport(w io.Writer, flags reportFlags, ds app.Dataset, writers reportWriters, width int) error {
	switch flags.format.value {
	case formatJSON:
		if flags.chart {
			return formatter.WriteJSON(w, ds)
		}
		return writers.json(w)
	case formatCSV:
		if flags.chart {
			return formatter.WriteChartCSV(w, ds)
		}
		return writers.csv(w)
	default:
		fmt.Fprintln(w, writers.text())
		if flags.chart {
			fmt.Fprintln(w, formatter.FormatChart(ds, width))
		}
		return nil
	}
}

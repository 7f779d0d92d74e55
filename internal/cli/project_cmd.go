package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/xpoint/internal/cli/formatter"
	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects", "p"},
		Short:   "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectHoursCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, tags string
	var weekly int
	days := &weekdaysValue{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a project with its weekly hours and work days",
		Long: `Register a project. Daily expected hours are the weekly hours divided by
the number of distinct work days, rounded up.

Without --name on an interactive terminal a form asks for the values.`,
		Example: `  xpoint project add --name "Client A" --weekly-hours 40 --days mon,tue,wed,thu,fri`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				Name:        name,
				WeeklyHours: weekly,
				WorkDays:    days.days,
				Tags:        tags,
			}

			if name == "" && app.interactive() {
				v := projectFormValues{Days: days.days, Tags: tags}
				if weekly > 0 {
					v.WeeklyHours = strconv.Itoa(weekly)
				}
				if err := app.runForm(projectForm(&v)); err != nil {
					return err
				}
				hours, err := strconv.Atoi(strings.TrimSpace(v.WeeklyHours))
				if err != nil {
					return fmt.Errorf("invalid weekly hours %q", v.WeeklyHours)
				}
				p.Name = strings.TrimSpace(v.Name)
				p.WeeklyHours = hours
				p.WorkDays = v.Days
				p.Tags = strings.TrimSpace(v.Tags)
			}

			if err := app.Projects.Create(cmd.Context(), p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s [%s] (%dh per work day)\n",
				p.Name, p.DisplayID(), p.DailyHours())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().IntVar(&weekly, "weekly-hours", 0, "Target hours per week")
	cmd.Flags().Var(days, "days", "Work days, comma-separated (e.g. mon,tue,wed)")
	cmd.Flags().StringVar(&tags, "tags", "", "Optional free-text tags")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	format := newFormatValue(formatText, formatJSON)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format.value == formatJSON {
				return formatter.WriteJSON(out, projectsJSON(projects))
			}
			fmt.Fprintln(out, formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().Var(format, "format", "Output format: text or json")
	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProjectID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProject(p))
			return nil
		},
	}
}

func newProjectHoursCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hours <id|name>",
		Short: "Show expected hours per work day",
		Long:  "Show expected hours per work day. An unknown project reports 0 hours and is flagged, not treated as an error.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProjectOrRaw(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			dh, err := app.Projects.DailyHours(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDailyHours(id, dh))
			return nil
		},
	}
}

type projectJSON struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	WeeklyHours int      `json:"weekly_hours"`
	DailyHours  int      `json:"daily_hours"`
	WorkDays    []string `json:"work_days"`
	Tags        string   `json:"tags,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

func projectsJSON(projects []*domain.Project) []projectJSON {
	out := make([]projectJSON, 0, len(projects))
	for _, p := range projects {
		days := make([]string, 0, len(p.WorkDays))
		for _, d := range p.WorkDays {
			days = append(days, d.String())
		}
		out = append(out, projectJSON{
			ID:          p.ID,
			Name:        p.Name,
			WeeklyHours: p.WeeklyHours,
			DailyHours:  p.DailyHours(),
			WorkDays:    days,
			Tags:        p.Tags,
			CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out
}

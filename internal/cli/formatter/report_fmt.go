package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/xpoint/internal/app"
	"github.com/alexanderramin/xpoint/internal/domain"
)

// FormatDaily renders one day's summary as a key/value card.
func FormatDaily(s *app.DailySummary, width int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(s.Date.Format("Monday, Jan 2 2006")), StatusPill(s.Status)))
	b.WriteString("\n")
	b.WriteString(row("TOTAL   ", FormatHours(s.TotalTime)))
	b.WriteString(row("PAUSE   ", FormatHours(s.PauseTime)))
	b.WriteString(row("WORK    ", FormatHours(s.WorkTime)))
	b.WriteString(row("EXPECTED", FormatHours(s.ExpectedTime)))
	b.WriteString("\n")
	b.WriteString(RenderProgress(s.WorkTime, s.ExpectedTime, width, StatusColor(s.Status)))
	b.WriteString(footer(s.ProjectFound, s.OpenEntries))
	return RenderBox("Daily summary", b.String())
}

// FormatWeekly renders the seven days of a weekly summary and its totals.
func FormatWeekly(s *app.WeeklySummary) string {
	headers := []string{"DATE", "WORK", "PAUSE", "EXPECTED", "STATUS"}
	rows := make([][]string, 0, len(s.Days)+1)
	open := 0
	for _, d := range s.Days {
		rows = append(rows, []string{
			d.Date.Format("Mon 02 Jan"),
			FormatDecimal(d.WorkTime),
			FormatDecimal(d.PauseTime),
			FormatDecimal(d.ExpectedTime),
			StatusPill(d.Status),
		})
		open += d.OpenEntries
	}
	rows = append(rows, []string{
		Bold("Week"),
		Bold(FormatDecimal(s.WorkTime)),
		Bold(FormatDecimal(s.PauseTime)),
		Bold(FormatDecimal(s.ExpectedTime)),
		StatusPill(s.Status),
	})

	title := fmt.Sprintf("Week %s to %s", s.Start.Format(domain.DateLayout), s.End.Format(domain.DateLayout))
	return RenderBox(title, RenderTable(headers, rows, 1, 2, 3)+footer(s.ProjectFound, open))
}

// FormatMonthly renders one row per 7-day window and the month totals.
func FormatMonthly(s *app.MonthlySummary) string {
	headers := []string{"WINDOW", "FROM", "TO", "WORK", "PAUSE", "EXPECTED", "STATUS"}
	rows := make([][]string, 0, len(s.Weeks)+1)
	for i, w := range s.Weeks {
		rows = append(rows, []string{
			fmt.Sprintf("W%d", i+1),
			w.Start.Format("Jan 02"),
			w.End.Format("Jan 02"),
			FormatDecimal(w.WorkTime),
			FormatDecimal(w.PauseTime),
			FormatDecimal(w.ExpectedTime),
			StatusPill(w.Status),
		})
	}
	rows = append(rows, []string{
		Bold("Month"), "", "",
		Bold(FormatDecimal(s.WorkTime)),
		Bold(FormatDecimal(s.PauseTime)),
		Bold(FormatDecimal(s.ExpectedTime)),
		StatusPill(s.Status),
	})

	title := fmt.Sprintf("%s %d", s.Month, s.Year)
	content := RenderTable(headers, rows, 3, 4, 5) +
		Dim(fmt.Sprintf("%d days at %dh expected per day", s.DaysInMonth, s.DailyHours))
	return RenderBox(title, content+footer(s.ProjectFound, 0))
}

func row(label, value string) string {
	return fmt.Sprintf("%s  %s\n", StyleDim.Render(label), StyleFg.Render(value))
}

func footer(found bool, open int) string {
	var notes []string
	if !found {
		notes = append(notes, StyleYellow.Render("project not found: expected hours are 0"))
	}
	if open > 0 {
		notes = append(notes, Dim(fmt.Sprintf("%d open entr%s counted up to now", open, plural(open, "y", "ies"))))
	}
	if len(notes) == 0 {
		return ""
	}
	return "\n\n" + strings.Join(notes, "\n")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

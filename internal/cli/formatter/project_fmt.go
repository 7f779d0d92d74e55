package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/xpoint/internal/domain"
)

// FormatProjectList renders the registry inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return RenderBox("Projects", Dim("No projects yet. Add one with: xpoint project add"))
	}
	headers := []string{"ID", "NAME", "WEEKLY", "DAILY", "DAYS", "TAGS"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			fmt.Sprintf("%dh", p.WeeklyHours),
			fmt.Sprintf("%dh", p.DailyHours()),
			WorkDaysLabel(p.WorkDays),
			TagsLabel(p.Tags),
		})
	}
	return RenderBox("Projects", RenderTable(headers, rows, 2, 3))
}

// FormatProject renders a single project card.
func FormatProject(p *domain.Project) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(p.Name) + "\n\n")
	b.WriteString(row("ID      ", p.ID))
	b.WriteString(row("WEEKLY  ", fmt.Sprintf("%dh", p.WeeklyHours)))
	b.WriteString(row("DAILY   ", fmt.Sprintf("%dh", p.DailyHours())))
	b.WriteString(row("DAYS    ", WorkDaysLabel(p.WorkDays)))
	b.WriteString(row("TAGS    ", TagsLabel(p.Tags)))
	b.WriteString(row("CREATED ", p.CreatedAt.Format(time.DateOnly)))
	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

// FormatDailyHours renders the registry lookup, flagging unknown projects.
func FormatDailyHours(id string, dh domain.DailyHours) string {
	if !dh.Found {
		return StyleYellow.Render(fmt.Sprintf("project %s not found", id)) + Dim(" (daily hours default to 0)")
	}
	return fmt.Sprintf("%s %s", Bold(fmt.Sprintf("%dh", dh.Hours)), Dim("expected per work day"))
}

// FormatEntries renders time entries; open ones show their running length at now.
func FormatEntries(entries []*domain.TimeEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No entries.")
	}
	headers := []string{"ID", "DATE", "START", "END", "KIND", "HOURS"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		end := domain.FormatClock(e.End)
		if e.IsOpen() {
			end = StyleYellow.Render("open")
		}
		kind := StyleGreen.Render("work")
		if e.IsPause {
			kind = StyleBlue.Render("pause")
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			e.Date.Format(domain.DateLayout),
			e.Start.Format(domain.ClockLayout),
			end,
			kind,
			FormatDecimal(domain.Round2(e.Hours(now))),
		})
	}
	return RenderTable(headers, rows, 5)
}

// FormatHistory renders an entry's edit records oldest first, dated relative
// to now.
func FormatHistory(records []*domain.EditRecord, now time.Time) string {
	if len(records) == 0 {
		return Dim("No edits recorded.")
	}
	headers := []string{"WHEN", "FIELD", "OLD", "NEW"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		old := r.OldValue
		if old == "" {
			old = Dim("null")
		}
		rows = append(rows, []string{
			HumanDate(r.EditedAt.In(now.Location()), now) + " " + r.EditedAt.In(now.Location()).Format(time.TimeOnly),
			r.EditType,
			old,
			r.NewValue,
		})
	}
	return RenderTable(headers, rows)
}

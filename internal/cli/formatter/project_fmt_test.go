package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleProject() *domain.Project {
	return &domain.Project{
		ID:          "abcdef12-3456-7890-abcd-ef1234567890",
		Name:        "Client A",
		WeeklyHours: 21,
		WorkDays:    domain.WorkDays{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		Tags:        "billable",
		CreatedAt:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestFormatProjectList(t *testing.T) {
	out := stripANSI(FormatProjectList([]*domain.Project{sampleProject()}))

	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef12-3456")
	assert.Contains(t, out, "Client A")
	assert.Contains(t, out, "21h")
	assert.Contains(t, out, "5h", "daily hours are rounded up")
	assert.Contains(t, out, "Mon Tue Wed Thu Fri")
	assert.Contains(t, out, "billable")
}

func TestFormatProjectList_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatProjectList(nil)), "No projects yet")
}

func TestFormatProject(t *testing.T) {
	out := stripANSI(FormatProject(sampleProject()))
	assert.Contains(t, out, "abcdef12-3456-7890-abcd-ef1234567890")
	assert.Contains(t, out, "2024-03-01")
}

func TestFormatDailyHours(t *testing.T) {
	assert.Contains(t, stripANSI(FormatDailyHours("p", domain.DailyHours{Hours: 8, Found: true})), "8h")
	assert.Contains(t, stripANSI(FormatDailyHours("ghost", domain.DailyHours{})), "project ghost not found")
}

func TestFormatEntries(t *testing.T) {
	date := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	end := date.Add(12 * time.Hour)
	entries := []*domain.TimeEntry{
		{ID: "e1", Date: date, Start: date.Add(9 * time.Hour), End: &end},
		{ID: "e2", Date: date, Start: date.Add(13 * time.Hour), IsPause: true},
	}

	out := stripANSI(FormatEntries(entries, date.Add(13*time.Hour+30*time.Minute)))
	assert.Contains(t, out, "09:00")
	assert.Contains(t, out, "12:00")
	assert.Contains(t, out, "3.00")
	assert.Contains(t, out, "open")
	assert.Contains(t, out, "pause")
	assert.Contains(t, out, "0.50")

	assert.Contains(t, stripANSI(FormatEntries(nil, date)), "No entries")
}

func TestFormatHistory(t *testing.T) {
	now := time.Date(2024, 3, 8, 20, 0, 0, 0, time.UTC)
	records := []*domain.EditRecord{
		{EditType: domain.EditEndTime, NewValue: "17:00", EditedAt: now.AddDate(0, 0, -1).Add(-2 * time.Hour)},
		{EditType: domain.EditEndTime, OldValue: "17:00", NewValue: "17:30", EditedAt: now.Add(-time.Hour)},
	}
	out := stripANSI(FormatHistory(records, now))
	assert.Contains(t, out, "null")
	assert.Contains(t, out, "17:30")
	assert.Contains(t, out, "Yesterday 18:00:00")
	assert.Contains(t, out, "Today 19:00:00")
	assert.Contains(t, stripANSI(FormatHistory(nil, now)), "No edits")
}

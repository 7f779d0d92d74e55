package cli

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alexanderramin/xpoint/internal/app"
	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/alexanderramin/xpoint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedDay records 09-12 work, 12-13 pause, 13-18 work on 2024-03-08.
func seedDay(t *testing.T, a *App) *domain.Project {
	t.Helper()
	p := seedProject(t, a, "Alpha")
	date := testutil.Date(2024, 3, 8)
	for _, e := range []*domain.TimeEntry{
		testutil.NewTestEntry(p.ID, date, "09:00", testutil.WithEnd("12:00")),
		testutil.NewTestEntry(p.ID, date, "12:00", testutil.WithEnd("13:00"), testutil.AsPause()),
		testutil.NewTestEntry(p.ID, date, "13:00", testutil.WithEnd("18:00")),
	} {
		require.NoError(t, a.Entries.Create(context.Background(), e))
	}
	return p
}

func TestReportDay_Text(t *testing.T) {
	a := testApp(t)
	seedDay(t, a)

	out, err := executeCmd(t, a, "report", "day", "-p", "Alpha")
	require.NoError(t, err)
	assert.Contains(t, out, "Friday, Mar 8 2024")
	assert.Contains(t, out, "UNDER")
	assert.Contains(t, out, "7h")
}

func TestReportDay_JSON(t *testing.T) {
	a := testApp(t)
	seedDay(t, a)

	out, err := executeCmd(t, a, "report", "day", "-p", "Alpha", "--date", "2024-03-08", "--format", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 8.0, got["total_time"])
	assert.Equal(t, 1.0, got["pause_time"])
	assert.Equal(t, 7.0, got["work_time"])
	assert.Equal(t, 8.0, got["expected_time"])
	assert.Equal(t, "under", got["status"])
}

func TestReportDay_ChartDataset(t *testing.T) {
	a := testApp(t)
	seedDay(t, a)

	out, err := executeCmd(t, a, "report", "day", "-p", "Alpha", "--format", "json", "--chart")
	require.NoError(t, err)

	var ds app.Dataset
	require.NoError(t, json.Unmarshal([]byte(out), &ds))
	assert.Equal(t, app.ChartDaily, ds.Kind)
	require.Len(t, ds.Series, 1)
	assert.Equal(t, []app.Point{{Label: "Work", Value: 7}, {Label: "Pause", Value: 1}}, ds.Series[0].Points)

	out, err = executeCmd(t, a, "report", "day", "-p", "Alpha", "--chart")
	require.NoError(t, err)
	assert.Contains(t, out, "WORK AND PAUSE 2024-03-08")
}

func TestReportDay_UnknownProjectIsZeroExpectation(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "report", "day", "-p", "ghost", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t,
		"period,from,to,total_time,work_time,pause_time,expected_time,status\n"+
			"day,2024-03-08,2024-03-08,0.00,0.00,0.00,0.00,on_target\n",
		out)

	out, err = executeCmd(t, a, "report", "day", "-p", "ghost")
	require.NoError(t, err)
	assert.Contains(t, out, "project not found")
}

func TestReportWeek(t *testing.T) {
	a := testApp(t)
	seedDay(t, a)

	out, err := executeCmd(t, a, "report", "week", "-p", "Alpha", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[1], "day,2024-03-04,"), "defaults to Monday of the current week")
	assert.Equal(t, "week,2024-03-04,2024-03-10,8.00,7.00,1.00,56.00,under", lines[8])

	out, err = executeCmd(t, a, "report", "week", "-p", "Alpha", "--start", "2024-03-08", "--chart")
	require.NoError(t, err)
	assert.Contains(t, out, "WEEK 2024-03-08 TO 2024-03-14")
	assert.Contains(t, out, "Fri 08")

	out, err = executeCmd(t, a, "report", "week", "-p", "Alpha", "--start", "2024-03-08", "--format", "csv", "--chart")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 15)
	assert.Equal(t, "chart,series,label,value", lines[0])
	assert.Equal(t, "weekly,work,Fri 08,7.00", lines[1])
	assert.Equal(t, "weekly,expected,Fri 08,8.00", lines[8])
}

func TestReportMonth(t *testing.T) {
	a := testApp(t)
	seedDay(t, a)

	out, err := executeCmd(t, a, "report", "month", "-p", "Alpha", "--month", "2024-03", "--format", "json")
	require.NoError(t, err)

	var got struct {
		DaysInMonth  int     `json:"days_in_month"`
		ExpectedTime float64 `json:"expected_time"`
		WorkTime     float64 `json:"work_time"`
		Weeks        []struct {
			Start string `json:"start"`
		} `json:"weeks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 31, got.DaysInMonth)
	assert.Equal(t, 248.0, got.ExpectedTime)
	assert.Equal(t, 7.0, got.WorkTime)
	require.Len(t, got.Weeks, 5)
	assert.Equal(t, "2024-03-29", got.Weeks[4].Start)

	out, err = executeCmd(t, a, "report", "month", "-p", "Alpha", "--chart")
	require.NoError(t, err)
	assert.Contains(t, out, "MARCH 2024")
	assert.Contains(t, out, "W5")
}

func TestReport_InvalidFlags(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "report", "day", "-p", "x", "--format", "xml")
	assert.Error(t, err)

	_, err = executeCmd(t, a, "report", "month", "-p", "x", "--month", "March")
	assert.Error(t, err)

	_, err = executeCmd(t, a, "report", "week")
	assert.Error(t, err, "--project is required")
}

package chart

import (
	"testing"
	"time"

	"github.com/alexanderramin/xpoint/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaily(t *testing.T) {
	ds := Daily(&app.DailySummary{Date: date(2024, 3, 8), WorkTime: 7, PauseTime: 1, TotalTime: 8})

	assert.Equal(t, app.ChartDaily, ds.Kind)
	assert.Contains(t, ds.Title, "2024-03-08")
	require.Len(t, ds.Series, 1)
	assert.Equal(t, []app.Point{{Label: "Work", Value: 7}, {Label: "Pause", Value: 1}}, ds.Series[0].Points)
}

func TestWeekly(t *testing.T) {
	start := date(2024, 3, 4)
	w := &app.WeeklySummary{Start: start, End: start.AddDate(0, 0, 6), DailyHours: 8}
	for i := range 7 {
		w.Days = append(w.Days, app.DailySummary{Date: start.AddDate(0, 0, i), WorkTime: float64(i)})
	}

	ds := Weekly(w)
	assert.Equal(t, app.ChartWeekly, ds.Kind)

	work := ds.SeriesByName(SeriesWork)
	expected := ds.SeriesByName(SeriesExpected)
	require.NotNil(t, work)
	require.NotNil(t, expected)
	require.Len(t, work.Points, 7)
	assert.Equal(t, "Mon 04", work.Points[0].Label)
	assert.Equal(t, "Sun 10", work.Points[6].Label)
	assert.Equal(t, 6.0, work.Points[6].Value)
	for _, p := range expected.Points {
		assert.Equal(t, 8.0, p.Value)
	}
	assert.Equal(t, 8.0, Max(ds))
}

func TestMonthly(t *testing.T) {
	m := &app.MonthlySummary{Year: 2024, Month: time.March}
	for i := range 5 {
		m.Weeks = append(m.Weeks, app.WeeklySummary{WorkTime: float64(10 * i), ExpectedTime: 56})
	}

	ds := Monthly(m)
	assert.Equal(t, app.ChartMonthly, ds.Kind)
	assert.Equal(t, "March 2024", ds.Title)

	work := ds.SeriesByName(SeriesWork)
	require.NotNil(t, work)
	require.Len(t, work.Points, 5)
	assert.Equal(t, "W1", work.Points[0].Label)
	assert.Equal(t, "W5", work.Points[4].Label)
	assert.Equal(t, 40.0, work.Points[4].Value)
	assert.Nil(t, ds.SeriesByName("missing"))
}

func TestMax_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Max(app.Dataset{}))
}

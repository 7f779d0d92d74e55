// Package chart turns report summaries into labelled series for rendering.
package chart

import (
	"fmt"

	"github.com/alexanderramin/xpoint/internal/app"
	"github.com/alexanderramin/xpoint/internal/domain"
)

const (
	SeriesHours    = "hours"
	SeriesWork     = "work"
	SeriesExpected = "expected"

	unitHours = "h"
)

// Daily is the work/pause split of one day.
func Daily(s *app.DailySummary) app.Dataset {
	return app.Dataset{
		Kind:  app.ChartDaily,
		Title: "Work and pause " + s.Date.Format(domain.DateLayout),
		Unit:  unitHours,
		Series: []app.Series{{
			Name: SeriesHours,
			Points: []app.Point{
				{Label: "Work", Value: s.WorkTime},
				{Label: "Pause", Value: s.PauseTime},
			},
		}},
	}
}

// Weekly pairs each day's work with the per-day expectation.
func Weekly(s *app.WeeklySummary) app.Dataset {
	work := make([]app.Point, 0, len(s.Days))
	expected := make([]app.Point, 0, len(s.Days))
	for _, d := range s.Days {
		label := d.Date.Format("Mon 02")
		work = append(work, app.Point{Label: label, Value: d.WorkTime})
		expected = append(expected, app.Point{Label: label, Value: float64(s.DailyHours)})
	}
	return app.Dataset{
		Kind: app.ChartWeekly,
		Title: fmt.Sprintf("Week %s to %s",
			s.Start.Format(domain.DateLayout), s.End.Format(domain.DateLayout)),
		Unit: unitHours,
		Series: []app.Series{
			{Name: SeriesWork, Points: work},
			{Name: SeriesExpected, Points: expected},
		},
	}
}

// Monthly is the per-window trend of work against the weekly expectation.
func Monthly(s *app.MonthlySummary) app.Dataset {
	work := make([]app.Point, 0, len(s.Weeks))
	expected := make([]app.Point, 0, len(s.Weeks))
	for i, w := range s.Weeks {
		label := fmt.Sprintf("W%d", i+1)
		work = append(work, app.Point{Label: label, Value: w.WorkTime})
		expected = append(expected, app.Point{Label: label, Value: w.ExpectedTime})
	}
	return app.Dataset{
		Kind:  app.ChartMonthly,
		Title: fmt.Sprintf("%s %d", s.Month, s.Year),
		Unit:  unitHours,
		Series: []app.Series{
			{Name: SeriesWork, Points: work},
			{Name: SeriesExpected, Points: expected},
		},
	}
}

// Max returns the largest value across all series, or 0 for an empty dataset.
func Max(d app.Dataset) float64 {
	var m float64
	for _, s := range d.Series {
		for _, p := range s.Points {
			if p.Value > m {
				m = p.Value
			}
		}
	}
	return m
}

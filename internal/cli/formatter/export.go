package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/xpoint/internal/app"
	"github.com/alexanderramin/xpoint/internal/domain"
)

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type dailyJSON struct {
	ProjectID    string  `json:"project_id"`
	ProjectFound bool    `json:"project_found"`
	Date         string  `json:"date"`
	TotalTime    float64 `json:"total_time"`
	WorkTime     float64 `json:"work_time"`
	PauseTime    float64 `json:"pause_time"`
	ExpectedTime float64 `json:"expected_time"`
	Status       string  `json:"status"`
	OpenEntries  int     `json:"open_entries"`
}

type weeklyJSON struct {
	ProjectID    string      `json:"project_id"`
	ProjectFound bool        `json:"project_found"`
	Start        string      `json:"start"`
	End          string      `json:"end"`
	DailyHours   int         `json:"daily_hours"`
	TotalTime    float64     `json:"total_time"`
	WorkTime     float64     `json:"work_time"`
	PauseTime    float64     `json:"pause_time"`
	ExpectedTime float64     `json:"expected_time"`
	Status       string      `json:"status"`
	Days         []dailyJSON `json:"days"`
}

type monthlyJSON struct {
	ProjectID    string       `json:"project_id"`
	ProjectFound bool         `json:"project_found"`
	Year         int          `json:"year"`
	Month        int          `json:"month"`
	DaysInMonth  int          `json:"days_in_month"`
	DailyHours   int          `json:"daily_hours"`
	TotalTime    float64      `json:"total_time"`
	WorkTime     float64      `json:"work_time"`
	PauseTime    float64      `json:"pause_time"`
	ExpectedTime float64      `json:"expected_time"`
	Status       string       `json:"status"`
	Weeks        []weeklyJSON `json:"weeks"`
}

// DailyJSON is the wire shape of a daily summary: snake_case keys and
// YYYY-MM-DD dates.
func DailyJSON(s *app.DailySummary) any {
	return toDailyJSON(s)
}

func WeeklyJSON(s *app.WeeklySummary) any {
	return toWeeklyJSON(s)
}

func MonthlyJSON(s *app.MonthlySummary) any {
	m := monthlyJSON{
		ProjectID:    s.ProjectID,
		ProjectFound: s.ProjectFound,
		Year:         s.Year,
		Month:        int(s.Month),
		DaysInMonth:  s.DaysInMonth,
		DailyHours:   s.DailyHours,
		TotalTime:    s.TotalTime,
		WorkTime:     s.WorkTime,
		PauseTime:    s.PauseTime,
		ExpectedTime: s.ExpectedTime,
		Status:       string(s.Status),
		Weeks:        make([]weeklyJSON, 0, len(s.Weeks)),
	}
	for i := range s.Weeks {
		m.Weeks = append(m.Weeks, toWeeklyJSON(&s.Weeks[i]))
	}
	return m
}

func toDailyJSON(s *app.DailySummary) dailyJSON {
	return dailyJSON{
		ProjectID:    s.ProjectID,
		ProjectFound: s.ProjectFound,
		Date:         s.Date.Format(domain.DateLayout),
		TotalTime:    s.TotalTime,
		WorkTime:     s.WorkTime,
		PauseTime:    s.PauseTime,
		ExpectedTime: s.ExpectedTime,
		Status:       string(s.Status),
		OpenEntries:  s.OpenEntries,
	}
}

func toWeeklyJSON(s *app.WeeklySummary) weeklyJSON {
	w := weeklyJSON{
		ProjectID:    s.ProjectID,
		ProjectFound: s.ProjectFound,
		Start:        s.Start.Format(domain.DateLayout),
		End:          s.End.Format(domain.DateLayout),
		DailyHours:   s.DailyHours,
		TotalTime:    s.TotalTime,
		WorkTime:     s.WorkTime,
		PauseTime:    s.PauseTime,
		ExpectedTime: s.ExpectedTime,
		Status:       string(s.Status),
		Days:         make([]dailyJSON, 0, len(s.Days)),
	}
	for i := range s.Days {
		w.Days = append(w.Days, toDailyJSON(&s.Days[i]))
	}
	return w
}

var csvHeader = []string{"period", "from", "to", "total_time", "work_time", "pause_time", "expected_time", "status"}

// WriteDailyCSV writes a header and one row for the day.
func WriteDailyCSV(w io.Writer, s *app.DailySummary) error {
	date := s.Date.Format(domain.DateLayout)
	return writeCSV(w, csvHeader, [][]string{
		csvRow("day", date, date, s.TotalTime, s.WorkTime, s.PauseTime, s.ExpectedTime, s.Status),
	})
}

// WriteWeeklyCSV writes one row per day followed by the week total.
func WriteWeeklyCSV(w io.Writer, s *app.WeeklySummary) error {
	rows := make([][]string, 0, len(s.Days)+1)
	for _, d := range s.Days {
		date := d.Date.Format(domain.DateLayout)
		rows = append(rows, csvRow("day", date, date, d.TotalTime, d.WorkTime, d.PauseTime, d.ExpectedTime, d.Status))
	}
	rows = append(rows, csvRow("week", s.Start.Format(domain.DateLayout), s.End.Format(domain.DateLayout),
		s.TotalTime, s.WorkTime, s.PauseTime, s.ExpectedTime, s.Status))
	return writeCSV(w, csvHeader, rows)
}

// WriteMonthlyCSV writes one row per window followed by the month total.
func WriteMonthlyCSV(w io.Writer, s *app.MonthlySummary) error {
	rows := make([][]string, 0, len(s.Weeks)+1)
	for _, wk := range s.Weeks {
		rows = append(rows, csvRow("week", wk.Start.Format(domain.DateLayout), wk.End.Format(domain.DateLayout),
			wk.TotalTime, wk.WorkTime, wk.PauseTime, wk.ExpectedTime, wk.Status))
	}
	first := fmt.Sprintf("%04d-%02d-01", s.Year, int(s.Month))
	last := fmt.Sprintf("%04d-%02d-%02d", s.Year, int(s.Month), s.DaysInMonth)
	rows = append(rows, csvRow("month", first, last, s.TotalTime, s.WorkTime, s.PauseTime, s.ExpectedTime, s.Status))
	return writeCSV(w, csvHeader, rows)
}

func csvRow(period, from, to string, total, work, pause, expected float64, status domain.SummaryStatus) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	return []string{period, from, to, f(total), f(work), f(pause), f(expected), string(status)}
}

// WriteChartCSV writes one row per chart point, series by series.
func WriteChartCSV(w io.Writer, ds app.Dataset) error {
	var rows [][]string
	for _, s := range ds.Series {
		for _, p := range s.Points {
			rows = append(rows, []string{string(ds.Kind), s.Name, p.Label, strconv.FormatFloat(p.Value, 'f', 2, 64)})
		}
	}
	return writeCSV(w, []string{"chart", "series", "label", "value"}, rows)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/spf13/pflag"
)

// weekdaysValue is a pflag.Value for --days mon,tue,... Repeating the flag
// appends.
type weekdaysValue struct {
	days domain.WorkDays
}

var _ pflag.Value = (*weekdaysValue)(nil)

func (v *weekdaysValue) String() string {
	return v.days.String()
}

func (v *weekdaysValue) Set(s string) error {
	days, err := domain.ParseWorkDays(s)
	if err != nil {
		return err
	}
	v.days = append(v.days, days...)
	return nil
}

func (v *weekdaysValue) Type() string {
	return "weekdays"
}

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatCSV  = "csv"
)

// formatValue restricts --format to a fixed set of names.
type formatValue struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(allowed ...string) *formatValue {
	return &formatValue{value: formatText, allowed: allowed}
}

func (v *formatValue) String() string { return v.value }

func (v *formatValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range v.allowed {
		if s == a {
			v.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(v.allowed, ", "))
}

func (v *formatValue) Type() string { return "format" }

// parseDate reads YYYY-MM-DD in the app location. "" means today; "today"
// and "yesterday" are accepted too.
func parseDate(app *App, s string) (time.Time, error) {
	now := app.now()
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return domain.DateOf(now), nil
	case "yesterday":
		return domain.DateOf(now).AddDate(0, 0, -1), nil
	}
	d, err := time.ParseInLocation(domain.DateLayout, s, app.loc())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// parseClockOn reads HH:MM on date. "" or "now" means the current time when
// date is today.
func parseClockOn(app *App, date time.Time, s string) (time.Time, error) {
	if s == "" || strings.EqualFold(s, "now") {
		now := app.now()
		if !domain.DateOf(now).Equal(date) {
			return time.Time{}, fmt.Errorf("a time is required for dates other than today")
		}
		return now.Truncate(time.Minute), nil
	}
	return domain.AtClock(date, s)
}

// parseMonth reads YYYY-MM; "" means the current month.
func parseMonth(app *App, s string) (int, time.Month, error) {
	if s == "" {
		now := app.now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.ParseInLocation("2006-01", s, app.loc())
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q (want YYYY-MM)", s)
	}
	return t.Year(), t.Month(), nil
}

// startOfWeek is the Monday on or before t.
func startOfWeek(t time.Time) time.Time {
	d := domain.DateOf(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

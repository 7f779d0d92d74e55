package domain

import "time"

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

type TimeEntry struct {
	ID        string
	ProjectID string
	Date      time.Time
	Start     time.Time
	End       *time.Time
	IsPause   bool
}

// IsOpen reports whether the entry has not been closed yet.
func (e *TimeEntry) IsOpen() bool {
	return e.End == nil
}

// ValidateEnd checks that end lies strictly after the entry's start.
func (e *TimeEntry) ValidateEnd(end time.Time) error {
	if !end.After(e.Start) {
		return &ValidationError{
			Field:   "end_time",
			Message: "end time " + end.Format(ClockLayout) + " must be after start time " + e.Start.Format(ClockLayout),
		}
	}
	return nil
}

// EffectiveEnd is End for closed entries and now for open ones. An open
// entry from an earlier day keeps running, and one starting after now has a
// negative length.
func (e *TimeEntry) EffectiveEnd(now time.Time) time.Time {
	if e.End != nil {
		return *e.End
	}
	return now
}

// Hours is the length of the entry in hours, as seen at now.
func (e *TimeEntry) Hours(now time.Time) float64 {
	return e.EffectiveEnd(now).Sub(e.Start).Hours()
}

// DateOf truncates t to midnight of its calendar date in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AtClock combines date with an HH:MM clock string.
func AtClock(date time.Time, clock string) (time.Time, error) {
	c, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "time", Message: "invalid clock " + clock + " (want HH:MM)"}
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, date.Location()), nil
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// WorkDays is the set of weekdays a project is scheduled on. Order carries no
// meaning and duplicates are tolerated until Distinct is called.
type WorkDays []time.Weekday

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// ParseWeekday accepts full or abbreviated English day names, case-insensitive.
func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", s)
	}
	return d, nil
}

// ParseWorkDays parses a comma-separated list of day names. Empty segments
// are skipped, so "" yields an empty set.
func ParseWorkDays(s string) (WorkDays, error) {
	var days WorkDays
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// Distinct returns the set without duplicates, in first-seen order.
func (w WorkDays) Distinct() WorkDays {
	seen := make(map[time.Weekday]bool, len(w))
	out := make(WorkDays, 0, len(w))
	for _, d := range w {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

// String joins full day names with commas, the storage representation.
func (w WorkDays) String() string {
	names := make([]string, len(w))
	for i, d := range w {
		names[i] = d.String()
	}
	return strings.Join(names, ",")
}

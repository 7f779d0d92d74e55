package domain

import (
	"math"
	"strings"
	"time"
)

type Project struct {
	ID          string
	Name        string
	WeeklyHours int
	WorkDays    WorkDays
	Tags        string
	CreatedAt   time.Time
}

// Validate checks the invariants that make DailyHours well defined.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Message: "project name is required"}
	}
	if p.WeeklyHours <= 0 {
		return &ValidationError{Field: "weekly_hours", Message: "weekly hours must be positive"}
	}
	if len(p.WorkDays.Distinct()) == 0 {
		return &ValidationError{Field: "work_days", Message: "at least one work day is required"}
	}
	return nil
}

// DailyHours returns ceil(WeeklyHours / distinct work days). Rounding up is
// intentional, so DailyHours*7 may exceed WeeklyHours.
func (p *Project) DailyHours() int {
	days := len(p.WorkDays.Distinct())
	if days == 0 || p.WeeklyHours <= 0 {
		return 0
	}
	return int(math.Ceil(float64(p.WeeklyHours) / float64(days)))
}

// DisplayID truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// DailyHours is the result of a registry lookup. Found distinguishes a
// zero target from a project that does not exist.
type DailyHours struct {
	Hours int
	Found bool
}

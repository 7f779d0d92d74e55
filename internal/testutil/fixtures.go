package testutil

import (
	"time"

	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/google/uuid"
)

// Weekdays is Monday through Friday.
var Weekdays = domain.WorkDays{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// Date returns midnight UTC of the given calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// At returns date at HH:MM. It panics on a malformed clock.
func At(date time.Time, clock string) time.Time {
	t, err := domain.AtClock(date, clock)
	if err != nil {
		panic(err)
	}
	return t
}

// Project options
type ProjectOption func(*domain.Project)

func WithWeeklyHours(h int) ProjectOption {
	return func(p *domain.Project) {
		p.WeeklyHours = h
	}
}

func WithWorkDays(days ...time.Weekday) ProjectOption {
	return func(p *domain.Project) {
		p.WorkDays = days
	}
}

func WithTags(tags string) ProjectOption {
	return func(p *domain.Project) {
		p.Tags = tags
	}
}

// NewTestProject returns a 40h, Monday–Friday project.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		ID:          uuid.New().String(),
		Name:        name,
		WeeklyHours: 40,
		WorkDays:    append(domain.WorkDays(nil), Weekdays...),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// TimeEntry options
type EntryOption func(*domain.TimeEntry)

// WithEnd closes the entry at HH:MM on its date.
func WithEnd(clock string) EntryOption {
	return func(e *domain.TimeEntry) {
		end := At(e.Date, clock)
		e.End = &end
	}
}

func AsPause() EntryOption {
	return func(e *domain.TimeEntry) {
		e.IsPause = true
	}
}

// NewTestEntry returns an open work entry on date starting at HH:MM.
func NewTestEntry(projectID string, date time.Time, start string, opts ...EntryOption) *domain.TimeEntry {
	e := &domain.TimeEntry{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Date:      domain.DateOf(date),
		Start:     At(date, start),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

package service

import (
	"context"
	"time"

	"github.com/alexanderramin/xpoint/internal/app"
	"github.com/alexanderramin/xpoint/internal/domain"
)

// ProjectService is the project registry.
type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	// DailyHours never fails on an unknown project; it reports Found=false.
	DailyHours(ctx context.Context, id string) (domain.DailyHours, error)
}

// EntryService is the time entry log.
type EntryService interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	// ResolveID accepts a full entry ID or a unique prefix of one.
	ResolveID(ctx context.Context, input string) (string, error)
	Close(ctx context.Context, id string, end time.Time) error
	Amend(ctx context.Context, id string, start time.Time) error
	// ForRange lists entries dated from..to ordered by (date, start).
	// A nil to selects the single date from.
	ForRange(ctx context.Context, projectID string, from time.Time, to *time.Time) ([]*domain.TimeEntry, error)
	ListOpen(ctx context.Context, projectID string) ([]*domain.TimeEntry, error)
	Start(ctx context.Context, projectID string, at time.Time, pause bool) (*domain.TimeEntry, error)
	Stop(ctx context.Context, projectID string, at time.Time) ([]*domain.TimeEntry, error)
	History(ctx context.Context, entryID string) ([]*domain.EditRecord, error)
}

// ReportService is the aggregator over the registry and the entry log.
type ReportService interface {
	Daily(ctx context.Context, req app.DailyRequest) (*app.DailySummary, error)
	Weekly(ctx context.Context, req app.WeeklyRequest) (*app.WeeklySummary, error)
	Monthly(ctx context.Context, req app.MonthlyRequest) (*app.MonthlySummary, error)
}

// Clock returns the current time. A nil Clock means time.Now.
type Clock func() time.Time

func clockOrDefault(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

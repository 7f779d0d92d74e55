package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/xpoint/internal/domain"
)

// ProjectRepo stores project definitions. Projects are immutable once created.
type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
}

// TimeEntryRepo stores work and pause intervals.
type TimeEntryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	List(ctx context.Context) ([]*domain.TimeEntry, error)
	// ListByRange returns entries of projectID dated from..to inclusive,
	// ordered by (date, start_time).
	ListByRange(ctx context.Context, projectID string, from, to time.Time) ([]*domain.TimeEntry, error)
	ListOpen(ctx context.Context, projectID string) ([]*domain.TimeEntry, error)
	ListByIDPrefix(ctx context.Context, prefix string) ([]*domain.TimeEntry, error)
	UpdateEnd(ctx context.Context, id string, end *time.Time) error
	UpdateStart(ctx context.Context, id string, start time.Time) error
}

// EditRepo is the append-only edit history.
type EditRepo interface {
	Create(ctx context.Context, r *domain.EditRecord) error
	ListByEntry(ctx context.Context, timeEntryID string) ([]*domain.EditRecord, error)
}

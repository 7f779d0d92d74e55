package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/xpoint/internal/db"
	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/alexanderramin/xpoint/internal/repository"
	"github.com/google/uuid"
)

type entryService struct {
	entries  repository.TimeEntryRepo
	edits    repository.EditRepo
	uow      db.UnitOfWork
	loc      *time.Location
	clock    Clock
	observer UseCaseObserver
}

// NewEntryService builds the time entry log. Close and Amend write the entry
// and its edit record through uow so neither lands without the other.
func NewEntryService(
	entries repository.TimeEntryRepo,
	edits repository.EditRepo,
	uow db.UnitOfWork,
	loc *time.Location,
	clock Clock,
	observers ...UseCaseObserver,
) EntryService {
	if loc == nil {
		loc = time.Local
	}
	return &entryService{
		entries:  entries,
		edits:    edits,
		uow:      uow,
		loc:      loc,
		clock:    clockOrDefault(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *entryService) Create(ctx context.Context, e *domain.TimeEntry) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": e.ProjectID, "is_pause": e.IsPause}
	defer observe(ctx, s.observer, "create-entry", startedAt, &err, fields)

	if e.Date.IsZero() {
		e.Date = s.day(e.Start)
	} else {
		e.Date = s.day(e.Date)
	}
	e.Start = s.onDate(e.Date, e.Start)
	if e.End != nil {
		end := s.onDate(e.Date, *e.End)
		if err = e.ValidateEnd(end); err != nil {
			return err
		}
		e.End = &end
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	fields["entry_id"] = e.ID
	return s.entries.Create(ctx, e)
}

func (s *entryService) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, entryNotFound(err, id)
	}
	return e, nil
}

func (s *entryService) ResolveID(ctx context.Context, input string) (string, error) {
	if input == "" {
		return "", &domain.ValidationError{Field: "id", Message: "entry ID is required"}
	}
	if e, err := s.entries.GetByID(ctx, input); err == nil {
		return e.ID, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}
	matches, err := s.entries.ListByIDPrefix(ctx, input)
	if err != nil {
		return "", err
	}
	switch len(matches) {
	case 0:
		return "", &domain.NotFoundError{Entity: "time entry", ID: input}
	case 1:
		return matches[0].ID, nil
	default:
		return "", fmt.Errorf("entry ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func (s *entryService) Close(ctx context.Context, id string, end time.Time) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"entry_id": id}
	defer observe(ctx, s.observer, "close-entry", startedAt, &err, fields)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return s.closeTx(ctx, tx, id, end, fields)
	})
}

func (s *entryService) closeTx(ctx context.Context, tx db.DBTX, id string, end time.Time, fields map[string]any) error {
	entries := repository.NewSQLiteTimeEntryRepo(tx, s.loc)
	edits := repository.NewSQLiteEditRepo(tx)

	e, err := entries.GetByID(ctx, id)
	if err != nil {
		return entryNotFound(err, id)
	}
	newEnd := s.onDate(e.Date, end)
	if err := e.ValidateEnd(newEnd); err != nil {
		return err
	}
	oldValue := domain.FormatClock(e.End)
	if err := entries.UpdateEnd(ctx, id, &newEnd); err != nil {
		return entryNotFound(err, id)
	}
	rec := domain.NewEditRecord(id, domain.EditEndTime, oldValue, domain.FormatClock(&newEnd), s.clock().UTC())
	if err := edits.Create(ctx, rec); err != nil {
		return err
	}
	fields["old"] = oldValue
	fields["new"] = rec.NewValue
	return nil
}

func (s *entryService) Amend(ctx context.Context, id string, start time.Time) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"entry_id": id}
	defer observe(ctx, s.observer, "amend-entry", startedAt, &err, fields)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		entries := repository.NewSQLiteTimeEntryRepo(tx, s.loc)
		edits := repository.NewSQLiteEditRepo(tx)

		e, err := entries.GetByID(ctx, id)
		if err != nil {
			return entryNotFound(err, id)
		}
		newStart := s.onDate(e.Date, start)
		if e.End != nil && !e.End.After(newStart) {
			return &domain.ValidationError{
				Field:   "start_time",
				Message: "start time " + newStart.Format(domain.ClockLayout) + " must be before end time " + e.End.Format(domain.ClockLayout),
			}
		}
		oldValue := e.Start.Format(domain.ClockLayout)
		if err := entries.UpdateStart(ctx, id, newStart); err != nil {
			return entryNotFound(err, id)
		}
		rec := domain.NewEditRecord(id, domain.EditStartTime, oldValue, newStart.Format(domain.ClockLayout), s.clock().UTC())
		return edits.Create(ctx, rec)
	})
}

func (s *entryService) ForRange(ctx context.Context, projectID string, from time.Time, to *time.Time) ([]*domain.TimeEntry, error) {
	last := from
	if to != nil {
		last = *to
	}
	return s.entries.ListByRange(ctx, projectID, domain.DateOf(from), domain.DateOf(last))
}

func (s *entryService) ListOpen(ctx context.Context, projectID string) ([]*domain.TimeEntry, error) {
	return s.entries.ListOpen(ctx, projectID)
}

func (s *entryService) Start(ctx context.Context, projectID string, at time.Time, pause bool) (*domain.TimeEntry, error) {
	at = at.In(s.loc)
	e := &domain.TimeEntry{
		ProjectID: projectID,
		Date:      s.day(at),
		Start:     at,
		IsPause:   pause,
	}
	if err := s.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Stop closes every open entry of the project dated on at's calendar date.
func (s *entryService) Stop(ctx context.Context, projectID string, at time.Time) ([]*domain.TimeEntry, error) {
	at = at.In(s.loc)
	open, err := s.entries.ListOpen(ctx, projectID)
	if err != nil {
		return nil, err
	}
	day := s.day(at)
	var closed []*domain.TimeEntry
	for _, e := range open {
		if !e.Date.Equal(day) {
			continue
		}
		if err := s.Close(ctx, e.ID, at); err != nil {
			return closed, err
		}
		end := s.onDate(e.Date, at)
		e.End = &end
		closed = append(closed, e)
	}
	return closed, nil
}

func (s *entryService) History(ctx context.Context, entryID string) ([]*domain.EditRecord, error) {
	if _, err := s.GetByID(ctx, entryID); err != nil {
		return nil, err
	}
	return s.edits.ListByEntry(ctx, entryID)
}

// day is midnight of t's calendar date in the service location.
func (s *entryService) day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

// onDate keeps t's wall clock, to the minute, on date in the service location.
func (s *entryService) onDate(date, t time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, s.loc)
}

func entryNotFound(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.NotFoundError{Entity: "time entry", ID: id}
	}
	return err
}

package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/xpoint/internal/repository"
	"github.com/alexanderramin/xpoint/internal/testutil"
)

// frozen is the fixed "now" used by service tests: Friday 2024-03-08 20:00 UTC.
var frozen = time.Date(2024, 3, 8, 20, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

type services struct {
	db       *sql.DB
	projects repository.ProjectRepo
	entries  repository.TimeEntryRepo
	edits    repository.EditRepo
	project  ProjectService
	entry    EntryService
	report   ReportService
}

func setupServices(t *testing.T, observers ...UseCaseObserver) *services {
	t.Helper()
	database := testutil.NewTestDB(t)
	s := &services{
		db:       database,
		projects: repository.NewSQLiteProjectRepo(database),
		entries:  repository.NewSQLiteTimeEntryRepo(database, time.UTC),
		edits:    repository.NewSQLiteEditRepo(database),
	}
	clock := fixedClock(frozen)
	s.project = NewProjectService(s.projects, clock, observers...)
	s.entry = NewEntryService(s.entries, s.edits, testutil.NewTestUoW(database), time.UTC, clock, observers...)
	s.report = NewReportService(s.project, s.entry, time.UTC, clock, observers...)
	return s
}

// recordingObserver keeps every event it receives.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.events))
	for _, e := range r.events {
		names = append(names, e.Name)
	}
	return names
}

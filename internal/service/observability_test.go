package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/alexanderramin/xpoint/internal/app"
	"github.com/alexanderramin/xpoint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseCaseObserver_RecordsServiceCalls(t *testing.T) {
	obs := &recordingObserver{}
	s := setupServices(t, obs)
	ctx := context.Background()
	date := testutil.Date(2024, 3, 8)

	proj := testutil.NewTestProject("Observed")
	require.NoError(t, s.project.Create(ctx, proj))
	e := testutil.NewTestEntry(proj.ID, date, "09:00")
	require.NoError(t, s.entry.Create(ctx, e))
	require.NoError(t, s.entry.Close(ctx, e.ID, testutil.At(date, "10:00")))
	_, err := s.report.Daily(ctx, app.DailyRequest{ProjectID: proj.ID, Date: date})
	require.NoError(t, err)

	assert.Equal(t, []string{"create-project", "create-entry", "close-entry", "report-daily"}, obs.names())
	for _, ev := range obs.events {
		assert.True(t, ev.Success, ev.Name)
		assert.NoError(t, ev.Err)
	}
	assert.Equal(t, "under", obs.events[3].Fields["status"])
}

func TestUseCaseObserver_RecordsFailure(t *testing.T) {
	obs := &recordingObserver{}
	s := setupServices(t, obs)

	err := s.entry.Close(context.Background(), "missing", frozen)
	require.Error(t, err)

	require.Len(t, obs.events, 1)
	ev := obs.events[0]
	assert.Equal(t, "close-entry", ev.Name)
	assert.False(t, ev.Success)
	assert.True(t, errors.Is(ev.Err, err))
	assert.Equal(t, "missing", ev.Fields["entry_id"])
}

func TestLogUseCaseObserver_WritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelDebug)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "report-weekly", Success: true, Fields: map[string]any{"project_id": "p1"}})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "close-entry", Err: errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, "use_case=report-weekly")
	assert.Contains(t, out, "project_id=p1")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestLogUseCaseObserver_SuccessLoggedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "report-daily", Success: true})
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "use_case=report-daily")

	buf.Reset()
	quiet := NewLogUseCaseObserver(&buf, slog.LevelWarn)
	quiet.ObserveUseCase(context.Background(), UseCaseEvent{Name: "report-daily", Success: true})
	assert.Empty(t, buf.String())
}

func TestSlogUseCaseObserver_UsesGivenLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil)).With("app", "xpoint")
	obs := NewSlogUseCaseObserver(logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "create-entry", Success: true})
	assert.Contains(t, buf.String(), "app=xpoint")
	assert.Contains(t, buf.String(), "use_case=create-entry")
	assert.IsType(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
}

func TestLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	obs := NewLogUseCaseObserver(nil, slog.LevelInfo)
	assert.IsType(t, NoopUseCaseObserver{}, obs)
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))
}

package service

import (
	"context"
	"time"

	"github.com/alexanderramin/xpoint/internal/app"
	"github.com/alexanderramin/xpoint/internal/domain"
)

type reportService struct {
	projects ProjectService
	entries  EntryService
	loc      *time.Location
	clock    Clock
	observer UseCaseObserver
}

// NewReportService builds the aggregator. It reads only through the registry
// and the entry log and keeps no state between calls.
func NewReportService(projects ProjectService, entries EntryService, loc *time.Location, clock Clock, observers ...UseCaseObserver) ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &reportService{
		projects: projects,
		entries:  entries,
		loc:      loc,
		clock:    clockOrDefault(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) Daily(ctx context.Context, req app.DailyRequest) (summary *app.DailySummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": req.ProjectID, "date": req.Date.Format(domain.DateLayout)}
	defer observe(ctx, s.observer, "report-daily", startedAt, &err, fields)

	dh, err := s.projects.DailyHours(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	summary, err = s.daily(ctx, req.ProjectID, s.date(req.Date), dh, s.now(req.Now))
	if err != nil {
		return nil, err
	}
	fields["status"] = string(summary.Status)
	return summary, nil
}

// daily sums one date. Pause intervals go to their own accumulator and are
// subtracted from the work total once at the end.
func (s *reportService) daily(ctx context.Context, projectID string, date time.Time, dh domain.DailyHours, now time.Time) (*app.DailySummary, error) {
	entries, err := s.entries.ForRange(ctx, projectID, date, nil)
	if err != nil {
		return nil, err
	}

	var total, pause float64
	var open int
	for _, e := range entries {
		if e.IsOpen() {
			open++
		}
		if e.IsPause {
			pause += e.Hours(now)
		} else {
			total += e.Hours(now)
		}
	}
	work := total - pause
	expected := float64(dh.Hours)

	return &app.DailySummary{
		ProjectID:    projectID,
		ProjectFound: dh.Found,
		Date:         date,
		TotalTime:    domain.Round2(total),
		WorkTime:     domain.Round2(work),
		PauseTime:    domain.Round2(pause),
		ExpectedTime: expected,
		Status:       domain.ClassifyWork(work, expected),
		OpenEntries:  open,
	}, nil
}

func (s *reportService) Weekly(ctx context.Context, req app.WeeklyRequest) (summary *app.WeeklySummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": req.ProjectID, "start": req.Start.Format(domain.DateLayout)}
	defer observe(ctx, s.observer, "report-weekly", startedAt, &err, fields)

	dh, err := s.projects.DailyHours(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	summary, err = s.weekly(ctx, req.ProjectID, s.date(req.Start), dh, s.now(req.Now))
	if err != nil {
		return nil, err
	}
	fields["status"] = string(summary.Status)
	return summary, nil
}

// weekly covers start and the six following calendar days. The expectation
// is DailyHours*7 whatever the project's work days are.
func (s *reportService) weekly(ctx context.Context, projectID string, start time.Time, dh domain.DailyHours, now time.Time) (*app.WeeklySummary, error) {
	w := &app.WeeklySummary{
		ProjectID:    projectID,
		ProjectFound: dh.Found,
		Start:        start,
		End:          start.AddDate(0, 0, 6),
		DailyHours:   dh.Hours,
		Days:         make([]app.DailySummary, 0, 7),
		ExpectedTime: float64(dh.Hours * 7),
	}
	for i := range 7 {
		d, err := s.daily(ctx, projectID, start.AddDate(0, 0, i), dh, now)
		if err != nil {
			return nil, err
		}
		w.Days = append(w.Days, *d)
		w.TotalTime += d.TotalTime
		w.WorkTime += d.WorkTime
		w.PauseTime += d.PauseTime
	}
	w.Status = domain.ClassifyWork(w.WorkTime, w.ExpectedTime)
	w.TotalTime = domain.Round2(w.TotalTime)
	w.WorkTime = domain.Round2(w.WorkTime)
	w.PauseTime = domain.Round2(w.PauseTime)
	return w, nil
}

func (s *reportService) Monthly(ctx context.Context, req app.MonthlyRequest) (summary *app.MonthlySummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": req.ProjectID, "year": req.Year, "month": int(req.Month)}
	defer observe(ctx, s.observer, "report-monthly", startedAt, &err, fields)

	dh, err := s.projects.DailyHours(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	now := s.now(req.Now)

	first := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, s.loc)
	last := first.AddDate(0, 1, -1)
	days := last.Day()

	m := &app.MonthlySummary{
		ProjectID:    req.ProjectID,
		ProjectFound: dh.Found,
		Year:         req.Year,
		Month:        req.Month,
		DaysInMonth:  days,
		DailyHours:   dh.Hours,
		ExpectedTime: float64(dh.Hours * days),
	}
	// The last window is not clipped to the month; its overflow days are
	// summed like any other.
	for start := first; !start.After(last); start = start.AddDate(0, 0, 7) {
		w, err := s.weekly(ctx, req.ProjectID, start, dh, now)
		if err != nil {
			return nil, err
		}
		m.Weeks = append(m.Weeks, *w)
		m.TotalTime += w.TotalTime
		m.WorkTime += w.WorkTime
		m.PauseTime += w.PauseTime
	}
	m.Status = domain.ClassifyWork(m.WorkTime, m.ExpectedTime)
	m.TotalTime = domain.Round2(m.TotalTime)
	m.WorkTime = domain.Round2(m.WorkTime)
	m.PauseTime = domain.Round2(m.PauseTime)

	fields["weeks"] = len(m.Weeks)
	fields["status"] = string(m.Status)
	return m, nil
}

func (s *reportService) now(override *time.Time) time.Time {
	if override != nil {
		return override.In(s.loc)
	}
	return s.clock().In(s.loc)
}

func (s *reportService) date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

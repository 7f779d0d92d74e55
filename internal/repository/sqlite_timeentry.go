package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/xpoint/internal/db"
	"github.com/alexanderramin/xpoint/internal/domain"
)

// SQLiteTimeEntryRepo implements TimeEntryRepo using a SQLite database.
// Dates and clocks are stored as text and read back in loc.
type SQLiteTimeEntryRepo struct {
	db  db.DBTX
	loc *time.Location
}

// NewSQLiteTimeEntryRepo creates a new SQLiteTimeEntryRepo. A nil loc means time.Local.
func NewSQLiteTimeEntryRepo(db db.DBTX, loc *time.Location) *SQLiteTimeEntryRepo {
	return &SQLiteTimeEntryRepo{db: db, loc: locOrLocal(loc)}
}

const entryColumns = `id, project_id, date, start_time, end_time, is_pause`

func (r *SQLiteTimeEntryRepo) Create(ctx context.Context, e *domain.TimeEntry) error {
	query := `INSERT INTO time_entries (` + entryColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.ProjectID,
		e.Date.Format(domain.DateLayout),
		e.Start.Format(domain.ClockLayout),
		nullableClock(e.End, domain.ClockLayout),
		boolToInt(e.IsPause),
	)
	if err != nil {
		return fmt.Errorf("inserting time entry: %w", err)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE id = ?`
	e, err := r.scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("time entry: %w", ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteTimeEntryRepo) List(ctx context.Context) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries ORDER BY date, start_time`
	return r.query(ctx, query)
}

func (r *SQLiteTimeEntryRepo) ListByRange(ctx context.Context, projectID string, from, to time.Time) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE project_id = ? AND date >= ? AND date <= ?
		ORDER BY date, start_time`
	return r.query(ctx, query, projectID, from.Format(domain.DateLayout), to.Format(domain.DateLayout))
}

func (r *SQLiteTimeEntryRepo) ListOpen(ctx context.Context, projectID string) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE project_id = ? AND end_time IS NULL
		ORDER BY date, start_time`
	return r.query(ctx, query, projectID)
}

// ListByIDPrefix finds entries whose ID starts with prefix. LIKE wildcards in
// prefix are escaped.
func (r *SQLiteTimeEntryRepo) ListByIDPrefix(ctx context.Context, prefix string) ([]*domain.TimeEntry, error) {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE id LIKE ? ESCAPE '\' ORDER BY date, start_time`
	return r.query(ctx, query, escaped+"%")
}

func (r *SQLiteTimeEntryRepo) UpdateEnd(ctx context.Context, id string, end *time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE time_entries SET end_time = ? WHERE id = ?`,
		nullableClock(end, domain.ClockLayout), id)
	if err != nil {
		return fmt.Errorf("updating end_time: %w", err)
	}
	return requireRow(res, id)
}

func (r *SQLiteTimeEntryRepo) UpdateStart(ctx context.Context, id string, start time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE time_entries SET start_time = ? WHERE id = ?`,
		start.Format(domain.ClockLayout), id)
	if err != nil {
		return fmt.Errorf("updating start_time: %w", err)
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("time entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) query(ctx context.Context, query string, args ...any) ([]*domain.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.TimeEntry
	for rows.Next() {
		e, err := r.scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return entries, nil
}

// scanEntry scans one row and rebuilds Start/End from the date and HH:MM columns.
func (r *SQLiteTimeEntryRepo) scanEntry(row scanner) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	var dateStr, startStr string
	var endStr sql.NullString
	var isPause int

	err := row.Scan(&e.ID, &e.ProjectID, &dateStr, &startStr, &endStr, &isPause)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning time entry: %w", err)
	}
	e.IsPause = intToBool(isPause)

	e.Date, err = time.ParseInLocation(domain.DateLayout, dateStr, r.loc)
	if err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	e.Start, err = domain.AtClock(e.Date, startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start_time: %w", err)
	}
	if endStr.Valid && endStr.String != "" {
		end, err := domain.AtClock(e.Date, endStr.String)
		if err != nil {
			return nil, fmt.Errorf("parsing end_time: %w", err)
		}
		e.End = &end
	}
	return &e, nil
}

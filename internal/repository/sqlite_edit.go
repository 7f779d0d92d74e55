package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/xpoint/internal/db"
	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/google/uuid"
)

// SQLiteEditRepo implements EditRepo on the edits_history table.
type SQLiteEditRepo struct {
	db db.DBTX
}

func NewSQLiteEditRepo(db db.DBTX) *SQLiteEditRepo {
	return &SQLiteEditRepo{db: db}
}

// Create appends rec, assigning an ID when it has none.
func (r *SQLiteEditRepo) Create(ctx context.Context, rec *domain.EditRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	query := `INSERT INTO edits_history (id, time_entry_id, edit_type, old_value, new_value, edit_date)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.TimeEntryID,
		rec.EditType,
		nullableString(rec.OldValue),
		nullableString(rec.NewValue),
		rec.EditedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting edit record: %w", err)
	}
	return nil
}

func (r *SQLiteEditRepo) ListByEntry(ctx context.Context, timeEntryID string) ([]*domain.EditRecord, error) {
	query := `SELECT id, time_entry_id, edit_type, old_value, new_value, edit_date
		FROM edits_history WHERE time_entry_id = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, timeEntryID)
	if err != nil {
		return nil, fmt.Errorf("listing edit records: %w", err)
	}
	defer rows.Close()

	var records []*domain.EditRecord
	for rows.Next() {
		var rec domain.EditRecord
		var oldValue, newValue sql.NullString
		var editedAtStr string
		if err := rows.Scan(&rec.ID, &rec.TimeEntryID, &rec.EditType, &oldValue, &newValue, &editedAtStr); err != nil {
			return nil, fmt.Errorf("scanning edit record: %w", err)
		}
		rec.OldValue = oldValue.String
		rec.NewValue = newValue.String
		rec.EditedAt, err = time.Parse(time.RFC3339Nano, editedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing edit_date: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating edit records: %w", err)
	}
	return records, nil
}

package domain

import "time"

const (
	EditEndTime   = "end_time"
	EditStartTime = "start_time"
)

// EditRecord is an append-only audit entry for a change to a TimeEntry.
// An empty OldValue or NewValue stands for a null column.
type EditRecord struct {
	ID          string
	TimeEntryID string
	EditType    string
	OldValue    string
	NewValue    string
	EditedAt    time.Time
}

// NewEditRecord builds a record for a field change stamped at editedAt.
func NewEditRecord(entryID, editType, oldValue, newValue string, editedAt time.Time) *EditRecord {
	return &EditRecord{
		TimeEntryID: entryID,
		EditType:    editType,
		OldValue:    oldValue,
		NewValue:    newValue,
		EditedAt:    editedAt,
	}
}

// FormatClock renders an optional clock value; nil becomes "".
func FormatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(ClockLayout)
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/alexanderramin/xpoint/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditRepo_AppendAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	entries := NewSQLiteTimeEntryRepo(db, time.UTC)
	edits := NewSQLiteEditRepo(db)

	entry := testutil.NewTestEntry("p1", testutil.Date(2024, 3, 8), "09:00")
	require.NoError(t, entries.Create(ctx, entry))

	at := time.Date(2024, 3, 8, 18, 0, 5, 0, time.UTC)
	first := domain.NewEditRecord(entry.ID, domain.EditEndTime, "", "18:00", at)
	first.ID = uuid.New().String()
	second := domain.NewEditRecord(entry.ID, domain.EditEndTime, "18:00", "18:30", at.Add(time.Minute))
	second.ID = uuid.New().String()
	require.NoError(t, edits.Create(ctx, first))
	require.NoError(t, edits.Create(ctx, second))

	list, err := edits.ListByEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Empty(t, list[0].OldValue, "null old value reads back empty")
	assert.Equal(t, "18:00", list[0].NewValue)
	assert.True(t, list[0].EditedAt.Equal(at))
	assert.Equal(t, "18:00", list[1].OldValue)
}

func TestEditRepo_NullOldValueStoredAsNull(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	entries := NewSQLiteTimeEntryRepo(db, time.UTC)
	edits := NewSQLiteEditRepo(db)

	entry := testutil.NewTestEntry("p1", testutil.Date(2024, 3, 8), "09:00")
	require.NoError(t, entries.Create(ctx, entry))

	rec := domain.NewEditRecord(entry.ID, domain.EditEndTime, "", "10:00", time.Now().UTC())
	rec.ID = "h1"
	require.NoError(t, edits.Create(ctx, rec))

	var isNull bool
	require.NoError(t, db.QueryRow(`SELECT old_value IS NULL FROM edits_history WHERE id = 'h1'`).Scan(&isNull))
	assert.True(t, isNull)
}

func TestEditRepo_ListUnknownEntryIsEmpty(t *testing.T) {
	edits := NewSQLiteEditRepo(testutil.NewTestDB(t))

	list, err := edits.ListByEntry(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, list)
}

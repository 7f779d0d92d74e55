package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/xpoint/internal/db"
	"github.com/alexanderramin/xpoint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool and survives a close/reopen cycle.
func newFileTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "xpoint_test.db")
	database, err := db.OpenDB(dbPath)
	require.NoError(t, err, "failed to create file test database")
	t.Cleanup(func() { database.Close() })
	return database, dbPath
}

// TestConcurrentAccess_ReadDuringWrite checks that range reads stay consistent
// while entries are appended. WAL mode allows readers alongside one writer.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database, _ := newFileTestDB(t)
	ctx := context.Background()

	entries := NewSQLiteTimeEntryRepo(database, time.UTC)
	day := testutil.Date(2024, 3, 8)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			start := time.Date(2024, 3, 8, i, 0, 0, 0, time.UTC).Format("15:04")
			e := testutil.NewTestEntry("p1", day, start)
			if err := entries.Create(ctx, e); err != nil {
				t.Errorf("writer: create entry %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				list, err := entries.ListByRange(ctx, "p1", day, day)
				if err != nil {
					t.Errorf("reader %d: list entries: %v", reader, err)
					return
				}
				for j := 1; j < len(list); j++ {
					if list[j].Start.Before(list[j-1].Start) {
						t.Errorf("reader %d: entries out of order", reader)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	list, err := entries.ListByRange(ctx, "p1", day, day)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}

func TestPersistence_SurvivesReopen(t *testing.T) {
	database, path := newFileTestDB(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Durable")
	require.NoError(t, NewSQLiteProjectRepo(database).Create(ctx, proj))
	require.NoError(t, database.Close())

	reopened, err := db.OpenDB(path)
	require.NoError(t, err)
	defer reopened.Close()

	fetched, err := NewSQLiteProjectRepo(reopened).GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Durable", fetched.Name)
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/xpoint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Consulting",
		testutil.WithWeeklyHours(21),
		testutil.WithWorkDays(time.Monday, time.Wednesday, time.Friday),
		testutil.WithTags("client,remote"),
	)
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, fetched.ID)
	assert.Equal(t, "Consulting", fetched.Name)
	assert.Equal(t, 21, fetched.WeeklyHours)
	assert.Equal(t, proj.WorkDays, fetched.WorkDays)
	assert.Equal(t, "client,remote", fetched.Tags)
	assert.True(t, proj.CreatedAt.Equal(fetched.CreatedAt))
}

func TestProjectRepo_WorkDaysStoredAsJoinedNames(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Raw", testutil.WithWorkDays(time.Tuesday, time.Thursday))
	require.NoError(t, repo.Create(ctx, proj))

	var raw string
	require.NoError(t, db.QueryRow(`SELECT work_days FROM projects WHERE id = ?`, proj.ID).Scan(&raw))
	assert.Equal(t, "Tuesday,Thursday", raw)
}

func TestProjectRepo_EmptyTagsStoredAsNull(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("NoTags")
	require.NoError(t, repo.Create(ctx, proj))

	var isNull bool
	require.NoError(t, db.QueryRow(`SELECT tags IS NULL FROM projects WHERE id = ?`, proj.ID).Scan(&isNull))
	assert.True(t, isNull)

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Tags)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("A")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("B")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

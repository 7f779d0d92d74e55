package cli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/xpoint/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectAdd_Flags(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "project", "add",
		"--name", "Client A", "--weekly-hours", "21", "--days", "mon,tue,wed", "--days", "thu,fri,mon", "--tags", "billable")
	require.NoError(t, err)
	assert.Contains(t, out, "Created project Client A")
	assert.Contains(t, out, "5h per work day")

	projects, err := app.Projects.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, 21, projects[0].WeeklyHours)
	assert.Equal(t, domain.WorkDays{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, projects[0].WorkDays)
	assert.Equal(t, "billable", projects[0].Tags)
}

func TestProjectAdd_ValidationErrors(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "project", "add", "--name", "X", "--weekly-hours", "0", "--days", "mon")
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "weekly_hours", verr.Field)

	_, err = executeCmd(t, app, "project", "add", "--name", "X", "--weekly-hours", "10")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "work_days", verr.Field)

	_, err = executeCmd(t, app, "project", "add", "--name", "X", "--weekly-hours", "10", "--days", "funday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown weekday")
}

func TestProjectAdd_InteractiveForm(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }

	var ran bool
	app.RunForm = func(f *huh.Form) error {
		ran = true
		return nil
	}

	// The form is only shown without --name; an untouched form yields an
	// invalid project.
	_, err := executeCmd(t, app, "project", "add")
	require.True(t, ran)
	assert.Error(t, err)

	ran = false
	_, err = executeCmd(t, app, "project", "add", "--name", "Direct", "--weekly-hours", "8", "--days", "mon")
	require.NoError(t, err)
	assert.False(t, ran, "flags skip the form")
}

func TestProjectAdd_FormCancelled(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	app.RunForm = func(*huh.Form) error { return huh.ErrUserAborted }

	_, err := executeCmd(t, app, "project", "add")
	assert.ErrorIs(t, err, huh.ErrUserAborted)
}

func TestProjectList(t *testing.T) {
	app := testApp(t)
	seedProject(t, app, "Alpha")
	seedProject(t, app, "Beta")

	out, err := executeCmd(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
	assert.Contains(t, out, "40h")
	assert.Contains(t, out, "Mon Tue Wed Thu Fri")
}

func TestProjectList_JSON(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app, "Alpha")

	out, err := executeCmd(t, app, "project", "list", "--format", "json")
	require.NoError(t, err)

	var got []projectJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, p.ID, got[0].ID)
	assert.Equal(t, 8, got[0].DailyHours)
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, got[0].WorkDays)

	_, err = executeCmd(t, app, "project", "list", "--format", "csv")
	assert.Error(t, err, "csv is not offered for projects")
}

func TestProjectShow_ByNameAndPrefix(t *testing.T) {
	app := testApp(t)
	p := seedProject(t, app, "Alpha")

	out, err := executeCmd(t, app, "project", "show", "alpha")
	require.NoError(t, err)
	assert.Contains(t, out, p.ID)

	out, err = executeCmd(t, app, "project", "show", p.ID[:6])
	require.NoError(t, err)
	assert.Contains(t, out, "Alpha")

	_, err = executeCmd(t, app, "project", "show", "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProjectHours(t *testing.T) {
	app := testApp(t)
	seedProject(t, app, "Alpha")

	out, err := executeCmd(t, app, "project", "hours", "Alpha")
	require.NoError(t, err)
	assert.Contains(t, out, "8h")

	out, err = executeCmd(t, app, "project", "hours", "ghost")
	require.NoError(t, err, "an unknown project is reported, not raised")
	assert.Contains(t, out, "project ghost not found")
}

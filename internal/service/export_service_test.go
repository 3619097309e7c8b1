package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"college-organizer/internal/model"
	"college-organizer/internal/repository"
)

func newExportFixture(t *testing.T) (*ExportService, *TaskService, *TrackService, *ProjectService) {
	t.Helper()
	db := newTestDB(t)
	trackRepo := repository.NewTrackRepository(db)
	tracks := NewTrackService(trackRepo)
	tasks := NewTaskService(repository.NewTaskRepository(db))
	projects := NewProjectService(repository.NewProjectRepository(db), trackRepo)
	return NewExportService(tasks, tracks, projects), tasks, tracks, projects
}

func TestExportPayloadShape(t *testing.T) {
	t.Parallel()
	export, tasks, tracks, _ := newExportFixture(t)
	ctx := context.Background()

	track, err := tracks.Create(ctx, TrackInput{Name: ptr("CS"), Color: ptr("#8b5cf6")})
	require.NoError(t, err)
	_, err = tasks.Create(ctx, TaskInput{Title: ptr("Essay"), Date: ptr("2024-03-15"), TrackID: &track.ID})
	require.NoError(t, err)

	payload, err := export.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.0", payload.Version)
	assert.False(t, payload.ExportedAt.IsZero())
	assert.Len(t, payload.Tasks, 1)
	assert.Len(t, payload.Tracks, 1)
	assert.Empty(t, payload.Projects)
}

func TestImportRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	source, tasks, tracks, projects := newExportFixture(t)
	track, err := tracks.Create(ctx, TrackInput{Name: ptr("CS"), Color: ptr("#8b5cf6")})
	require.NoError(t, err)
	project, err := projects.Create(ctx, ProjectInput{Name: ptr("Compiler"), TrackID: &track.ID})
	require.NoError(t, err)
	_, err = tasks.Create(ctx, TaskInput{
		Title:    ptr("Parser milestone"),
		Date:     ptr("2024-03-15"),
		EndDate:  ptr("2024-03-17"),
		Priority: prioPtr(model.PriorityHigh),
		TrackID:  &track.ID,
		ProjectID: &project.ID,
	})
	require.NoError(t, err)

	payload, err := source.Export(ctx)
	require.NoError(t, err)

	dest, destTasks, destTracks, destProjects := newExportFixture(t)
	result, err := dest.Import(ctx, *payload)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Tracks)
	assert.Equal(t, 1, result.Projects)
	assert.Equal(t, 1, result.Tasks)
	assert.Empty(t, result.Skipped)

	// Content survives; ids are re-minted and foreign keys remapped.
	importedTracks, err := destTracks.List(ctx)
	require.NoError(t, err)
	require.Len(t, importedTracks, 1)
	assert.Equal(t, "CS", importedTracks[0].Name)
	assert.Equal(t, "#8b5cf6", importedTracks[0].Color)
	assert.NotEqual(t, track.ID, importedTracks[0].ID)

	importedProjects, err := destProjects.List(ctx)
	require.NoError(t, err)
	require.Len(t, importedProjects, 1)
	assert.Equal(t, importedTracks[0].ID, importedProjects[0].TrackID)

	imported, err := destTasks.List(ctx)
	require.NoError(t, err)
	require.Len(t, imported, 1)
	got := imported[0]
	assert.Equal(t, "Parser milestone", got.Title)
	assert.Equal(t, "2024-03-15", got.Date)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, "2024-03-17", *got.EndDate)
	assert.Equal(t, model.PriorityHigh, got.Priority)
	require.NotNil(t, got.TrackID)
	assert.Equal(t, importedTracks[0].ID, *got.TrackID)
	require.NotNil(t, got.ProjectID)
	assert.Equal(t, importedProjects[0].ID, *got.ProjectID)
}

func TestImportIsAdditive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	export, tasks, tracks, _ := newExportFixture(t)

	_, err := tasks.Create(ctx, TaskInput{Title: ptr("Existing"), Date: ptr("2024-03-01")})
	require.NoError(t, err)

	_, err = export.Import(ctx, ExportPayload{
		Tracks: []model.Track{{ID: "old", Name: "Math", Color: "#3b82f6"}},
		Tasks:  []model.Task{{ID: "old-task", Title: "Imported", Date: "2024-03-02"}},
	})
	require.NoError(t, err)

	all, err := tasks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "import merges, never replaces")

	allTracks, err := tracks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, allTracks, 1)
}

func TestImportSkipsBadRecords(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	export, tasks, _, _ := newExportFixture(t)

	result, err := export.Import(ctx, ExportPayload{
		Tasks: []model.Task{
			{Title: "", Date: "2024-03-02"}, // invalid: no title
			{Title: "Good", Date: "2024-03-03"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Tasks)
	require.Len(t, result.Skipped, 1)
	assert.Contains(t, result.Skipped[0], "task")

	all, err := tasks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "prior writes stay committed")
}

func TestRenderCSV(t *testing.T) {
	t.Parallel()
	trackID := "t1"
	tasks := []model.Task{
		{Title: "Essay, final", Type: model.TypeAssignment, Date: "2024-03-15", Priority: model.PriorityHigh, TrackID: &trackID, Completed: true},
		{Title: "Untracked", Type: model.TypeEvent, Date: "2024-03-16", Priority: model.PriorityLow},
	}
	tracks := []model.Track{{ID: "t1", Name: "CS", Color: "#8b5cf6"}}

	out, err := RenderCSV(tasks, tracks)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Title,Type,Date,Priority,Track,Completed,Description", lines[0])
	assert.Contains(t, lines[1], `"Essay, final"`, "embedded comma stays quoted")
	assert.Contains(t, lines[1], "CS")
	assert.Contains(t, lines[1], "Yes")
	assert.Contains(t, lines[2], "None")
}

func TestRenderText(t *testing.T) {
	t.Parallel()
	tasks := []model.Task{
		{Title: "Essay", Type: model.TypeAssignment, Date: "2024-03-15", Priority: model.PriorityHigh, Description: "five pages"},
	}

	out := RenderText(tasks, nil, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	assert.Contains(t, out, "1. Essay")
	assert.Contains(t, out, "Priority: HIGH")
	assert.Contains(t, out, "Description: five pages")
	assert.Contains(t, out, "○ Incomplete")
}

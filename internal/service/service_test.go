package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"college-organizer/internal/model"
	"college-organizer/internal/repository"
)

// newTestDB opens a uniquely named shared in-memory database so parallel
// tests never see each other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB(dsn)
	require.NoError(t, err)
	return db
}

func newTaskService(t *testing.T) *TaskService {
	t.Helper()
	return NewTaskService(repository.NewTaskRepository(newTestDB(t)))
}

func TestCreateTaskDefaults(t *testing.T) {
	t.Parallel()
	svc := newTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, TaskInput{Title: ptr("Read chapter 4"), Date: ptr("2024-03-15")})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, model.TypeAssignment, task.Type)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, model.RecurNone, task.Recurring)
	assert.False(t, task.Completed)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestCreateTaskValidation(t *testing.T) {
	t.Parallel()
	svc := newTaskService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input TaskInput
		field string
	}{
		{"missing title", TaskInput{Date: ptr("2024-03-15")}, "title"},
		{"blank title", TaskInput{Title: ptr("   "), Date: ptr("2024-03-15")}, "title"},
		{"missing date", TaskInput{Title: ptr("x")}, "date"},
		{"malformed date", TaskInput{Title: ptr("x"), Date: ptr("15/03/2024")}, "date"},
		{"impossible date", TaskInput{Title: ptr("x"), Date: ptr("2024-02-30")}, "date"},
		{"end before start", TaskInput{Title: ptr("x"), Date: ptr("2024-03-15"), EndDate: ptr("2024-03-10")}, "endDate"},
		{"bad time", TaskInput{Title: ptr("x"), Date: ptr("2024-03-15"), StartTime: ptr("25:00")}, "startTime"},
		{"bad type", TaskInput{Title: ptr("x"), Date: ptr("2024-03-15"), Type: typePtr("chore")}, "type"},
		{"bad priority", TaskInput{Title: ptr("x"), Date: ptr("2024-03-15"), Priority: prioPtr("urgent")}, "priority"},
		{"days without weekly", TaskInput{Title: ptr("x"), Date: ptr("2024-03-15"), RecurringDays: []string{"mon"}}, "recurringDays"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestUpdateTaskPartialMerge(t *testing.T) {
	t.Parallel()
	svc := newTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, TaskInput{
		Title:       ptr("Original"),
		Description: ptr("keep me"),
		Date:        ptr("2024-03-15"),
		Priority:    prioPtr(model.PriorityHigh),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, task.ID, TaskInput{Completed: boolPtr(true)})
	require.NoError(t, err)

	assert.True(t, updated.Completed)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	assert.Equal(t, model.PriorityHigh, updated.Priority)
	assert.Equal(t, task.ID, updated.ID, "update never reissues the id")
}

func TestUpdateTaskRejectsInvalidMerge(t *testing.T) {
	t.Parallel()
	svc := newTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, TaskInput{Title: ptr("x"), Date: ptr("2024-03-15")})
	require.NoError(t, err)

	_, err = svc.Update(ctx, task.ID, TaskInput{EndDate: ptr("2024-03-01")})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "endDate", verr.Field)
}

func TestTaskNotFound(t *testing.T) {
	t.Parallel()
	svc := newTaskService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, "missing", TaskInput{Title: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	svc := newTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, TaskInput{Title: ptr("x"), Date: ptr("2024-03-15")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))
	_, err = svc.Get(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTrackValidation(t *testing.T) {
	t.Parallel()
	svc := NewTrackService(repository.NewTrackRepository(newTestDB(t)))
	ctx := context.Background()

	_, err := svc.Create(ctx, TrackInput{Color: ptr("#8b5cf6")})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = svc.Create(ctx, TrackInput{Name: ptr("CS"), Color: ptr("purple")})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "color", verr.Field)

	track, err := svc.Create(ctx, TrackInput{Name: ptr("CS"), Color: ptr("#8b5cf6")})
	require.NoError(t, err)
	assert.NotEmpty(t, track.ID)
}

func TestProjectRequiresExistingTrack(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	tracks := repository.NewTrackRepository(db)
	svc := NewProjectService(repository.NewProjectRepository(db), tracks)
	trackSvc := NewTrackService(tracks)
	ctx := context.Background()

	_, err := svc.Create(ctx, ProjectInput{Name: ptr("Compiler"), TrackID: ptr("nope")})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "trackId", verr.Field)

	track, err := trackSvc.Create(ctx, TrackInput{Name: ptr("CS"), Color: ptr("#8b5cf6")})
	require.NoError(t, err)

	project, err := svc.Create(ctx, ProjectInput{Name: ptr("Compiler"), TrackID: &track.ID})
	require.NoError(t, err)
	assert.Equal(t, track.ID, project.TrackID)

	// The link is only checked at creation: deleting the track afterwards
	// leaves the project dangling but intact.
	require.NoError(t, trackSvc.Delete(ctx, track.ID))
	kept, err := svc.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, track.ID, kept.TrackID)
}

func TestSubtaskRequiresExistingTask(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	taskSvc := NewTaskService(taskRepo)
	svc := NewSubtaskService(repository.NewSubtaskRepository(db), taskRepo)
	ctx := context.Background()

	_, err := svc.Create(ctx, SubtaskInput{TaskID: ptr("nope"), Title: ptr("step 1")})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "taskId", verr.Field)

	task, err := taskSvc.Create(ctx, TaskInput{Title: ptr("parent"), Date: ptr("2024-03-15")})
	require.NoError(t, err)

	sub, err := svc.Create(ctx, SubtaskInput{TaskID: &task.ID, Title: ptr("step 1")})
	require.NoError(t, err)

	// Deleting the parent does not cascade.
	require.NoError(t, taskSvc.Delete(ctx, task.ID))
	orphans, err := svc.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, sub.ID, orphans[0].ID)
}

func TestSubtaskOrdering(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	taskSvc := NewTaskService(taskRepo)
	svc := NewSubtaskService(repository.NewSubtaskRepository(db), taskRepo)
	ctx := context.Background()

	task, err := taskSvc.Create(ctx, TaskInput{Title: ptr("parent"), Date: ptr("2024-03-15")})
	require.NoError(t, err)

	second, err := svc.Create(ctx, SubtaskInput{TaskID: &task.ID, Title: ptr("second"), SortOrder: intPtr(2)})
	require.NoError(t, err)
	first, err := svc.Create(ctx, SubtaskInput{TaskID: &task.ID, Title: ptr("first"), SortOrder: intPtr(1)})
	require.NoError(t, err)

	listed, err := svc.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)
}

func TestPomodoroValidation(t *testing.T) {
	t.Parallel()
	svc := NewPomodoroService(repository.NewPomodoroRepository(newTestDB(t)))
	ctx := context.Background()

	_, err := svc.Create(ctx, PomodoroInput{Duration: 0})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "duration", verr.Field)

	session, err := svc.Create(ctx, PomodoroInput{Duration: 25})
	require.NoError(t, err)
	assert.Equal(t, 25, session.Duration)
	assert.False(t, session.CompletedAt.IsZero())
	assert.Nil(t, session.TaskID)
}

func TestSeedOnlyOnEmptyStore(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	taskSvc := NewTaskService(repository.NewTaskRepository(db))
	trackSvc := NewTrackService(repository.NewTrackRepository(db))
	ctx := context.Background()

	require.NoError(t, Seed(ctx, taskSvc, trackSvc))
	tasks, err := taskSvc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
	tracks, err := trackSvc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tracks, 2)

	// Second run is a no-op.
	require.NoError(t, Seed(ctx, taskSvc, trackSvc))
	tasks, err = taskSvc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func intPtr(n int) *int { return &n }

package service

import (
	"context"
	"strings"

	"college-organizer/internal/model"
	"college-organizer/internal/repository"
)

// TaskInput carries the writable task fields for create and patch. On a
// patch, nil pointers mean "leave unchanged".
type TaskInput struct {
	Title            *string          `json:"title"`
	Description      *string          `json:"description"`
	Type             *model.TaskType  `json:"type"`
	Date             *string          `json:"date"`
	EndDate          *string          `json:"endDate"`
	StartTime        *string          `json:"startTime"`
	EndTime          *string          `json:"endTime"`
	Completed        *bool            `json:"completed"`
	Priority         *model.Priority  `json:"priority"`
	TrackID          *string          `json:"trackId"`
	ProjectID        *string          `json:"projectId"`
	Recurring        *model.Recurring `json:"recurring"`
	RecurringDays    []string         `json:"recurringDays"`
	RecurringEndDate *string          `json:"recurringEndDate"`
	SortOrder        *int             `json:"order"`
}

// TaskService wraps task CRUD with boundary validation.
type TaskService struct {
	tasks *repository.TaskRepository
}

func NewTaskService(tasks *repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.tasks.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, input TaskInput) (*model.Task, error) {
	task := model.Task{
		Type:      model.TypeAssignment,
		Priority:  model.PriorityMedium,
		Recurring: model.RecurNone,
	}
	applyTaskInput(&task, input)

	if err := validateTask(&task); err != nil {
		return nil, err
	}
	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies a partial update. The merged record is re-validated, so a
// patch cannot push a task into an invalid state.
func (s *TaskService) Update(ctx context.Context, id string, input TaskInput) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	applyTaskInput(task, input)
	if err := validateTask(task); err != nil {
		return nil, err
	}
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	existed, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrNotFound
	}
	return nil
}

func applyTaskInput(task *model.Task, input TaskInput) {
	if input.Title != nil {
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Type != nil {
		task.Type = *input.Type
	}
	if input.Date != nil {
		task.Date = *input.Date
	}
	if input.EndDate != nil {
		task.EndDate = emptyToNil(*input.EndDate)
	}
	if input.StartTime != nil {
		task.StartTime = emptyToNil(*input.StartTime)
	}
	if input.EndTime != nil {
		task.EndTime = emptyToNil(*input.EndTime)
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.TrackID != nil {
		task.TrackID = emptyToNil(*input.TrackID)
	}
	if input.ProjectID != nil {
		task.ProjectID = emptyToNil(*input.ProjectID)
	}
	if input.Recurring != nil {
		task.Recurring = *input.Recurring
	}
	if input.RecurringDays != nil {
		task.RecurringDays = input.RecurringDays
	}
	if input.RecurringEndDate != nil {
		task.RecurringEndDate = emptyToNil(*input.RecurringEndDate)
	}
	if input.SortOrder != nil {
		task.SortOrder = *input.SortOrder
	}
}

func validateTask(task *model.Task) error {
	if task.Title == "" {
		return invalid("title", "title is required")
	}
	if task.Date == "" {
		return invalid("date", "date is required")
	}
	if !validISODate(task.Date) {
		return invalid("date", "must be YYYY-MM-DD")
	}
	if task.EndDate != nil {
		if !validISODate(*task.EndDate) {
			return invalid("endDate", "must be YYYY-MM-DD")
		}
		if *task.EndDate < task.Date {
			return invalid("endDate", "must not be before date")
		}
	}
	if task.StartTime != nil && !validClock(*task.StartTime) {
		return invalid("startTime", "must be HH:MM")
	}
	if task.EndTime != nil && !validClock(*task.EndTime) {
		return invalid("endTime", "must be HH:MM")
	}
	if !task.Type.Valid() {
		return invalid("type", "unknown task type")
	}
	if !task.Priority.Valid() {
		return invalid("priority", "unknown priority")
	}
	if !task.Recurring.Valid() {
		return invalid("recurring", "unknown recurrence")
	}
	if task.RecurringEndDate != nil && !validISODate(*task.RecurringEndDate) {
		return invalid("recurringEndDate", "must be YYYY-MM-DD")
	}
	if len(task.RecurringDays) > 0 && task.Recurring != model.RecurWeekly {
		return invalid("recurringDays", "only meaningful with weekly recurrence")
	}
	return nil
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

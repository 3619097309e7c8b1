package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"college-organizer/internal/model"
	"college-organizer/internal/repository"
)

// SubtaskInput carries the writable subtask fields.
type SubtaskInput struct {
	TaskID    *string `json:"taskId"`
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	SortOrder *int    `json:"order"`
}

// SubtaskService wraps subtask CRUD. The parent task must exist at
// creation; deleting the task later leaves subtasks orphaned.
type SubtaskService struct {
	subtasks *repository.SubtaskRepository
	tasks    *repository.TaskRepository
}

func NewSubtaskService(subtasks *repository.SubtaskRepository, tasks *repository.TaskRepository) *SubtaskService {
	return &SubtaskService{subtasks: subtasks, tasks: tasks}
}

func (s *SubtaskService) ListByTask(ctx context.Context, taskID string) ([]model.Subtask, error) {
	return s.subtasks.ListByTask(ctx, taskID)
}

func (s *SubtaskService) Create(ctx context.Context, input SubtaskInput) (*model.Subtask, error) {
	var subtask model.Subtask
	applySubtaskInput(&subtask, input)

	if subtask.Title == "" {
		return nil, invalid("title", "title is required")
	}
	if subtask.TaskID == "" {
		return nil, invalid("taskId", "taskId is required")
	}
	if _, err := s.tasks.FindByID(ctx, subtask.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("taskId", "task does not exist")
		}
		return nil, err
	}

	if err := s.subtasks.Create(ctx, &subtask); err != nil {
		return nil, err
	}
	return &subtask, nil
}

func (s *SubtaskService) Update(ctx context.Context, id string, input SubtaskInput) (*model.Subtask, error) {
	subtask, err := s.subtasks.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	applySubtaskInput(subtask, input)
	if subtask.Title == "" {
		return nil, invalid("title", "title is required")
	}
	if err := s.subtasks.Save(ctx, subtask); err != nil {
		return nil, err
	}
	return subtask, nil
}

func (s *SubtaskService) Delete(ctx context.Context, id string) error {
	existed, err := s.subtasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrNotFound
	}
	return nil
}

func applySubtaskInput(subtask *model.Subtask, input SubtaskInput) {
	if input.TaskID != nil {
		subtask.TaskID = *input.TaskID
	}
	if input.Title != nil {
		subtask.Title = strings.TrimSpace(*input.Title)
	}
	if input.Completed != nil {
		subtask.Completed = *input.Completed
	}
	if input.SortOrder != nil {
		subtask.SortOrder = *input.SortOrder
	}
}

package service

import (
	"context"

	"college-organizer/internal/model"
	"college-organizer/internal/repository"
)

// PomodoroInput carries the fields of a completed focus session.
type PomodoroInput struct {
	TaskID   *string `json:"taskId"`
	Duration int     `json:"duration"`
}

// PomodoroService records focus sessions. Sessions are write-once.
type PomodoroService struct {
	sessions *repository.PomodoroRepository
}

func NewPomodoroService(sessions *repository.PomodoroRepository) *PomodoroService {
	return &PomodoroService{sessions: sessions}
}

func (s *PomodoroService) List(ctx context.Context) ([]model.PomodoroSession, error) {
	return s.sessions.List(ctx)
}

func (s *PomodoroService) Create(ctx context.Context, input PomodoroInput) (*model.PomodoroSession, error) {
	if input.Duration <= 0 {
		return nil, invalid("duration", "must be a positive number of minutes")
	}
	session := model.PomodoroSession{
		TaskID:   input.TaskID,
		Duration: input.Duration,
	}
	if err := s.sessions.Create(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

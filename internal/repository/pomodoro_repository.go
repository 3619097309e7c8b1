package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"college-organizer/internal/model"
)

// PomodoroRepository records completed focus sessions. Sessions are
// write-once: there is no update or delete.
type PomodoroRepository struct {
	db *gorm.DB
}

func NewPomodoroRepository(db *gorm.DB) *PomodoroRepository {
	return &PomodoroRepository{db: db}
}

// List returns all sessions, most recent first.
func (r *PomodoroRepository) List(ctx context.Context) ([]model.PomodoroSession, error) {
	var sessions []model.PomodoroSession
	if err := r.db.WithContext(ctx).Order("completed_at DESC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list pomodoro sessions: %w", err)
	}
	return sessions, nil
}

func (r *PomodoroRepository) Create(ctx context.Context, session *model.PomodoroSession) error {
	session.ID = uuid.NewString()
	if session.CompletedAt.IsZero() {
		session.CompletedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("create pomodoro session: %w", err)
	}
	return nil
}

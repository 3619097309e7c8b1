package model

import "time"

// PomodoroSession records one completed focus session. Write-once.
type PomodoroSession struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	TaskID      *string   `json:"taskId"`
	Duration    int       `json:"duration"` // minutes
	CompletedAt time.Time `json:"completedAt"`
}

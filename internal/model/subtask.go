package model

import "time"

// Subtask is a checklist item owned by a task. The parent is not required
// to exist after creation; deleting a task leaves its subtasks orphaned.
type Subtask struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	TaskID    string    `gorm:"index" json:"taskId"`
	Title     string    `json:"title"`
	Completed bool      `gorm:"default:false" json:"completed"`
	SortOrder int       `gorm:"column:sort_order" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

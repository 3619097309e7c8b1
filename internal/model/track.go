package model

import "time"

// Track is a top-level category (a course, an area of life) that groups
// tasks and projects. Deleting a track does not touch tasks referencing it.
type Track struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

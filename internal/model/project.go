package model

import "time"

// Project groups tasks under a track. Color is optional and falls back to
// the parent track's color at display time.
type Project struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TrackID     string    `gorm:"index" json:"trackId"`
	Color       *string   `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

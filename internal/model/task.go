package model

import "time"

// Task is a single item on the organizer's calendar. Dates are stored as
// ISO YYYY-MM-DD strings and times as HH:MM; both compare correctly as
// plain strings, which the scheduling engine relies on.
type Task struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Type             TaskType  `gorm:"size:50;default:assignment" json:"type"`
	Date             string    `gorm:"index" json:"date"`
	EndDate          *string   `json:"endDate"`
	StartTime        *string   `json:"startTime"`
	EndTime          *string   `json:"endTime"`
	Completed        bool      `gorm:"default:false" json:"completed"`
	Priority         Priority  `gorm:"size:20;default:medium" json:"priority"`
	TrackID          *string   `gorm:"index" json:"trackId"`
	ProjectID        *string   `gorm:"index" json:"projectId"`
	Recurring        Recurring `gorm:"size:20;default:none" json:"recurring"`
	RecurringDays    []string  `gorm:"serializer:json" json:"recurringDays"`
	RecurringEndDate *string   `json:"recurringEndDate"`
	SortOrder        int       `gorm:"column:sort_order" json:"order"`
	CreatedAt        time.Time `json:"createdAt"`
}

// WindowEnd returns the last day of the task's occurrence window.
func (t Task) WindowEnd() string {
	if t.EndDate != nil && *t.EndDate != "" {
		return *t.EndDate
	}
	return t.Date
}

// Timed reports whether the task carries a full start/end time pair and so
// participates in the time-block view.
func (t Task) Timed() bool {
	return t.StartTime != nil && *t.StartTime != "" && t.EndTime != nil && *t.EndTime != ""
}

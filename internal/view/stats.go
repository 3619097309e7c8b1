package view

import (
	"math"

	"college-organizer/internal/model"
	"college-organizer/internal/schedule"
)

// Rollup is the per-track or per-project task tally.
type Rollup struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// Stats is the statistics dashboard payload.
type Stats struct {
	Total             int `json:"total"`
	Completed         int `json:"completed"`
	Incomplete        int `json:"incomplete"`
	CompletionRate    int `json:"completionRate"` // integer percent, 0 for an empty list
	HighPriorityOpen  int `json:"highPriorityOpen"`
	Overdue           int `json:"overdue"`
	ThisWeekTotal     int `json:"thisWeekTotal"`
	ThisWeekCompleted int `json:"thisWeekCompleted"`
	Pomodoros         int `json:"pomodoros"`
	PomodoroMinutes   int `json:"pomodoroMinutes"`
}

// TrackRollups counts tasks and completions per track. Tasks referencing a
// deleted track are simply absent from every rollup.
func TrackRollups(tracks []model.Track, tasks []model.Task) []Rollup {
	out := make([]Rollup, 0, len(tracks))
	for _, track := range tracks {
		r := Rollup{ID: track.ID, Name: track.Name, Color: track.Color}
		for _, t := range tasks {
			if t.TrackID != nil && *t.TrackID == track.ID {
				r.Total++
				if t.Completed {
					r.Completed++
				}
			}
		}
		out = append(out, r)
	}
	return out
}

// ProjectRollups counts tasks and completions per project. A project with
// no color of its own inherits its track's.
func ProjectRollups(projects []model.Project, tracks []model.Track, tasks []model.Task) []Rollup {
	trackColor := make(map[string]string, len(tracks))
	for _, track := range tracks {
		trackColor[track.ID] = track.Color
	}

	out := make([]Rollup, 0, len(projects))
	for _, p := range projects {
		r := Rollup{ID: p.ID, Name: p.Name}
		if p.Color != nil && *p.Color != "" {
			r.Color = *p.Color
		} else {
			r.Color = trackColor[p.TrackID]
		}
		for _, t := range tasks {
			if t.ProjectID != nil && *t.ProjectID == p.ID {
				r.Total++
				if t.Completed {
					r.Completed++
				}
			}
		}
		out = append(out, r)
	}
	return out
}

// Statistics computes the dashboard numbers. The completion rate of an
// empty task list is 0, never a division error.
func Statistics(tasks []model.Task, sessions []model.PomodoroSession, today string) Stats {
	var s Stats
	weekAgo := schedule.AddDays(today, -7)

	s.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
		if t.Priority == model.PriorityHigh && !t.Completed {
			s.HighPriorityOpen++
		}
		if schedule.IsOverdue(t, today) {
			s.Overdue++
		}
		if t.Date >= weekAgo && t.Date <= today {
			s.ThisWeekTotal++
			if t.Completed {
				s.ThisWeekCompleted++
			}
		}
	}
	s.Incomplete = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}

	s.Pomodoros = len(sessions)
	for _, sess := range sessions {
		s.PomodoroMinutes += sess.Duration
	}
	return s
}

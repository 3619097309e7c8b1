package view

import (
	"fmt"

	"college-organizer/internal/model"
	"college-organizer/internal/schedule"
)

// timelineDays is the fixed two-week span of the horizontal timeline.
const timelineDays = 14

// DayCell is one day of the month grid with the tasks active on it.
type DayCell struct {
	Day   int          `json:"day"`
	Date  string       `json:"date"`
	Tasks []model.Task `json:"tasks"`
}

// MonthGrid is the calendar month layout: LeadingBlanks empty cells (the
// weekday offset of day 1), then one cell per day. Truncating a cell's task
// list for display is the presentation layer's business, not ours.
type MonthGrid struct {
	Year          int       `json:"year"`
	Month         int       `json:"month"` // 0-indexed, January = 0
	LeadingBlanks int       `json:"leadingBlanks"`
	Days          []DayCell `json:"days"`
}

// Month builds the grid for a 0-indexed month. When expand is true,
// recurring tasks are materialized onto each date their rule produces;
// otherwise only the literal [date, endDate] window is consulted.
func Month(tasks []model.Task, year, month int, expand bool) MonthGrid {
	grid := MonthGrid{
		Year:          year,
		Month:         month,
		LeadingBlanks: schedule.FirstWeekdayOfMonth(year, month),
	}

	days := schedule.DaysInMonth(year, month)
	first := fmt.Sprintf("%04d-%02d-01", year, month+1)
	var expanded map[string]map[string]bool
	if expand {
		expanded = expandAll(tasks, first, schedule.AddDays(first, days))
	}

	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month+1, day)
		cell := DayCell{Day: day, Date: date}
		for _, t := range tasks {
			if schedule.OccursOn(t, date) || (expand && expanded[t.ID][date]) {
				cell.Tasks = append(cell.Tasks, t)
			}
		}
		grid.Days = append(grid.Days, cell)
	}
	return grid
}

// TimelineDay is one column of the two-week horizontal timeline.
type TimelineDay struct {
	Date  string       `json:"date"`
	Tasks []model.Task `json:"tasks"`
}

// Timeline lists tasks per day over 14 days from start, optionally scoped
// to one track. Membership is by anchor date only, matching the original
// timeline's behavior for multi-day tasks.
func Timeline(tasks []model.Task, start, trackID string) []TimelineDay {
	out := make([]TimelineDay, 0, timelineDays)
	for i := 0; i < timelineDays; i++ {
		date := schedule.AddDays(start, i)
		day := TimelineDay{Date: date}
		for _, t := range tasks {
			if trackID != "" && (t.TrackID == nil || *t.TrackID != trackID) {
				continue
			}
			if t.Date == date {
				day.Tasks = append(day.Tasks, t)
			}
		}
		out = append(out, day)
	}
	return out
}

func expandAll(tasks []model.Task, from, toExclusive string) map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(tasks))
	for _, t := range tasks {
		if t.Recurring == model.RecurNone || t.Recurring == "" {
			continue
		}
		days := schedule.Occurrences(t, from, toExclusive)
		if len(days) == 0 {
			continue
		}
		set := make(map[string]bool, len(days))
		for _, d := range days {
			set[d] = true
		}
		out[t.ID] = set
	}
	return out
}

// Package view derives the display-oriented structures the UI consumes
// from flat record slices: day buckets, time-block layouts, the calendar
// grid, rollup counts and statistics. Everything here is a pure
// recomputation over already-fetched data; nothing is cached or mutated.
package view

import (
	"sort"
	"strings"

	"college-organizer/internal/model"
	"college-organizer/internal/schedule"
)

// upcomingCap bounds the upcoming bucket to a fixed display window.
const upcomingCap = 10

// Filter keeps the tasks whose title or description contains the query,
// case-insensitively. An empty query keeps everything.
func Filter(tasks []model.Task, query string) []model.Task {
	if strings.TrimSpace(query) == "" {
		return tasks
	}
	q := strings.ToLower(query)
	var out []model.Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}

// TodayBucket selects the tasks active today (including multi-day spans
// ending today) sorted by priority, high first. The sort is stable:
// equal-priority tasks keep their input order.
func TodayBucket(tasks []model.Task, today string) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if schedule.OccursOn(t, today) || (t.EndDate != nil && *t.EndDate == today) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

// UpcomingBucket selects open tasks anchored strictly after today, sorted
// by date ascending and capped to the first ten.
func UpcomingBucket(tasks []model.Task, today string) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.Date > today && !t.Completed {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	if len(out) > upcomingCap {
		out = out[:upcomingCap]
	}
	return out
}

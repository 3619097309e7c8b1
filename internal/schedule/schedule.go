// Package schedule answers date-membership questions about tasks and expands
// recurrence rules into concrete occurrence dates.
//
// All functions are pure and operate on calendar dates formatted as ISO
// YYYY-MM-DD strings. Lexicographic comparison of that format matches
// chronological order, so the predicates compare strings directly and never
// build time.Time values except at parse boundaries. Inputs are assumed
// well-formed; the API layer validates formats before anything reaches here.
package schedule

import (
	"time"

	"college-organizer/internal/model"
)

const isoDate = "2006-01-02"

// OccursOn reports whether date falls inside the task's literal occurrence
// window [date, endDate] (endDate defaulting to the anchor date). Recurrence
// rules are not consulted; use Occurrences for expansion.
func OccursOn(t model.Task, date string) bool {
	return t.Date <= date && date <= t.WindowEnd()
}

// IsOverdue reports whether the task's anchor date is strictly before today
// and the task is still open. The end date of a multi-day span is ignored.
func IsOverdue(t model.Task, today string) bool {
	return t.Date < today && !t.Completed
}

// IsDueTomorrow reports whether the task's anchor date is the day after today.
func IsDueTomorrow(t model.Task, today string) bool {
	return t.Date == AddDays(today, 1)
}

// InRange reports whether the task's window intersects [startInclusive,
// endExclusive).
func InRange(t model.Task, startInclusive, endExclusive string) bool {
	return t.Date < endExclusive && t.WindowEnd() >= startInclusive
}

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(isoDate)
}

// AddDays shifts an ISO date by n calendar days (n may be negative).
func AddDays(date string, n int) string {
	d, err := time.Parse(isoDate, date)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, n).Format(isoDate)
}

// DaysInMonth returns the number of days in the given month (0-indexed,
// January = 0, matching the calendar grid contract).
func DaysInMonth(year, month int) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth returns the weekday of the first day of the given
// month (0-indexed month; Sunday = 0).
func FirstWeekdayOfMonth(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// WeekDates returns the seven dates of the week containing date, starting
// on Sunday.
func WeekDates(date string) []string {
	d, err := time.Parse(isoDate, date)
	if err != nil {
		return nil
	}
	sunday := d.AddDate(0, 0, -int(d.Weekday()))
	week := make([]string, 7)
	for i := range week {
		week[i] = sunday.AddDate(0, 0, i).Format(isoDate)
	}
	return week
}

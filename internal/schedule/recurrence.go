package schedule

import (
	"strings"
	"time"

	"college-organizer/internal/model"
)

var weekdayTokens = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// Occurrences expands a task's recurrence rule into the concrete dates it
// occurs on within [from, toExclusive), in ascending order.
//
// This is an explicit materialization step: the stored record never holds
// more than the anchor window, and the base predicates ignore recurrence.
// Rules:
//   - none: the literal [date, endDate] window, clipped to the range.
//   - daily: every day from the anchor forward.
//   - weekly: the weekdays named in recurringDays, or the anchor's weekday
//     when the set is empty, from the anchor forward.
//   - monthly: the anchor's day-of-month each month, clamped to short
//     months (the 31st recurs on Feb 28/29).
//
// recurringEndDate, when set, bounds every rule inclusively. Nothing before
// the anchor date is ever produced.
func Occurrences(t model.Task, from, toExclusive string) []string {
	if t.Recurring == model.RecurNone || t.Recurring == "" {
		return windowDays(t, from, toExclusive)
	}

	anchor, err := time.Parse(isoDate, t.Date)
	if err != nil {
		return nil
	}

	start := from
	if t.Date > start {
		start = t.Date
	}
	end := toExclusive
	if t.RecurringEndDate != nil && *t.RecurringEndDate != "" {
		if last := AddDays(*t.RecurringEndDate, 1); last < end {
			end = last
		}
	}

	var out []string
	for d := start; d < end; d = AddDays(d, 1) {
		day, err := time.Parse(isoDate, d)
		if err != nil {
			return out
		}
		if matchesRule(t, anchor, day) {
			out = append(out, d)
		}
	}
	return out
}

func matchesRule(t model.Task, anchor, day time.Time) bool {
	switch t.Recurring {
	case model.RecurDaily:
		return true
	case model.RecurWeekly:
		if len(t.RecurringDays) == 0 {
			return day.Weekday() == anchor.Weekday()
		}
		for _, token := range t.RecurringDays {
			if wd, ok := weekdayTokens[strings.ToLower(strings.TrimSpace(token))]; ok && wd == day.Weekday() {
				return true
			}
		}
		return false
	case model.RecurMonthly:
		want := anchor.Day()
		if last := DaysInMonth(day.Year(), int(day.Month())-1); want > last {
			want = last
		}
		return day.Day() == want
	}
	return false
}

// windowDays lists the days of the literal occurrence window that fall in
// [from, toExclusive).
func windowDays(t model.Task, from, toExclusive string) []string {
	start := t.Date
	if from > start {
		start = from
	}
	stop := AddDays(t.WindowEnd(), 1)
	if toExclusive < stop {
		stop = toExclusive
	}
	var out []string
	for d := start; d < stop; d = AddDays(d, 1) {
		out = append(out, d)
	}
	return out
}

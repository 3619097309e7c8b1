package model

// TaskType classifies what kind of calendar item a task is.
type TaskType string

const (
	TypeAssignment TaskType = "assignment"
	TypeExam       TaskType = "exam"
	TypeEvent      TaskType = "event"
	TypeReminder   TaskType = "reminder"
	TypeMeeting    TaskType = "meeting"
	TypeProject    TaskType = "project"
	TypeDeadline   TaskType = "deadline"
)

func (t TaskType) Valid() bool {
	switch t {
	case TypeAssignment, TypeExam, TypeEvent, TypeReminder, TypeMeeting, TypeProject, TypeDeadline:
		return true
	}
	return false
}

// Priority orders tasks within a day: high before medium before low.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank maps a priority to its sort position (smaller sorts first).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Recurring names a task's repetition rule.
type Recurring string

const (
	RecurNone    Recurring = "none"
	RecurDaily   Recurring = "daily"
	RecurWeekly  Recurring = "weekly"
	RecurMonthly Recurring = "monthly"
)

func (r Recurring) Valid() bool {
	switch r {
	case RecurNone, RecurDaily, RecurWeekly, RecurMonthly:
		return true
	}
	return false
}

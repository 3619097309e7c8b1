// Package notify raises one-shot alerts about the task collection. Each
// alert category is an explicit little state machine (idle or active)
// that can only trigger from idle, so a warning never stacks on top of an
// identical one that is still showing.
package notify

import (
	"fmt"
	"sync"
	"time"

	"college-organizer/internal/model"
	"college-organizer/internal/schedule"
)

// DisplayTTL is how long a notification stays active before it dismisses
// itself.
const DisplayTTL = 5 * time.Second

// Category identifies an alert condition.
type Category string

const (
	CategoryOverdue      Category = "overdue"
	CategoryHighTomorrow Category = "high-tomorrow"
)

// Level grades a notification for presentation.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Notification is one active alert.
type Notification struct {
	ID          string    `json:"id"`
	Category    Category  `json:"category"`
	Level       Level     `json:"level"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Center evaluates alert conditions and tracks which categories are
// currently showing. Safe for concurrent use.
type Center struct {
	ttl time.Duration

	mu     sync.Mutex
	active map[Category]Notification
	timers map[Category]*time.Timer
}

// NewCenter creates a Center with the given display timeout. A zero ttl
// disables auto-dismissal (useful in tests).
func NewCenter(ttl time.Duration) *Center {
	return &Center{
		ttl:    ttl,
		active: make(map[Category]Notification),
		timers: make(map[Category]*time.Timer),
	}
}

// Evaluate re-checks both alert conditions against the task collection.
// A category already active stays untouched regardless of the condition;
// an idle category whose condition holds transitions to active.
func (c *Center) Evaluate(tasks []model.Task, today string) {
	var overdue, highTomorrow int
	for _, t := range tasks {
		if schedule.IsOverdue(t, today) {
			overdue++
		}
		if schedule.IsDueTomorrow(t, today) && t.Priority == model.PriorityHigh && !t.Completed {
			highTomorrow++
		}
	}

	if overdue > 0 {
		c.trigger(Notification{
			Category:    CategoryOverdue,
			Level:       LevelWarning,
			Title:       "Overdue Tasks",
			Description: fmt.Sprintf("You have %d overdue task%s", overdue, plural(overdue)),
		})
	}
	if highTomorrow > 0 {
		c.trigger(Notification{
			Category:    CategoryHighTomorrow,
			Level:       LevelInfo,
			Title:       "High Priority Tomorrow",
			Description: fmt.Sprintf("%d high-priority task%s due tomorrow", highTomorrow, plural(highTomorrow)),
		})
	}
}

// Active returns the notifications currently showing.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, 0, len(c.active))
	for _, n := range c.active {
		out = append(out, n)
	}
	return out
}

// Dismiss clears a notification by id, returning the category to idle.
// Returns false when no active notification has that id.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for cat, n := range c.active {
		if n.ID == id {
			c.clearLocked(cat)
			return true
		}
	}
	return false
}

func (c *Center) trigger(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, showing := c.active[n.Category]; showing {
		return
	}
	n.CreatedAt = time.Now()
	n.ID = fmt.Sprintf("%s-%d", n.Category, n.CreatedAt.UnixMilli())
	c.active[n.Category] = n
	if c.ttl > 0 {
		cat := n.Category
		c.timers[cat] = time.AfterFunc(c.ttl, func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.clearLocked(cat)
		})
	}
}

func (c *Center) clearLocked(cat Category) {
	if timer, ok := c.timers[cat]; ok {
		timer.Stop()
		delete(c.timers, cat)
	}
	delete(c.active, cat)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

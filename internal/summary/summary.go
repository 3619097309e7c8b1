// Package summary renders the daily digest: what is overdue, what is on
// today, and what lands tomorrow. The digest is plain HTML suitable for a
// push channel.
package summary

import (
	"context"
	"fmt"
	"html"
	"strings"

	"college-organizer/internal/model"
	"college-organizer/internal/schedule"
	"college-organizer/internal/service"
	"college-organizer/internal/view"
)

// Service builds digests over the live task collection.
type Service struct {
	tasks  *service.TaskService
	tracks *service.TrackService
}

func New(tasks *service.TaskService, tracks *service.TrackService) *Service {
	return &Service{tasks: tasks, tracks: tracks}
}

// Digest renders the daily summary for the given date.
func (s *Service) Digest(ctx context.Context, today string) (string, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return "", err
	}
	tracks, err := s.tracks.List(ctx)
	if err != nil {
		return "", err
	}
	trackNames := make(map[string]string, len(tracks))
	for _, track := range tracks {
		trackNames[track.ID] = track.Name
	}

	var overdue, tomorrow []model.Task
	for _, t := range tasks {
		if schedule.IsOverdue(t, today) {
			overdue = append(overdue, t)
		}
		if schedule.IsDueTomorrow(t, today) && !t.Completed {
			tomorrow = append(tomorrow, t)
		}
	}
	todayBucket := view.TodayBucket(tasks, today)

	var sb strings.Builder
	sb.WriteString("📋 <b>Daily Summary</b>\n")
	sb.WriteString(fmt.Sprintf("🗓 %s\n\n", today))

	sb.WriteString("⚠️ <b>Overdue</b>\n")
	writeSection(&sb, overdue, trackNames, "— nothing overdue\n")

	sb.WriteString("\n🔥 <b>Today</b>\n")
	writeSection(&sb, todayBucket, trackNames, "— nothing scheduled today\n")

	sb.WriteString("\n⏳ <b>Tomorrow</b>\n")
	writeSection(&sb, tomorrow, trackNames, "— nothing due tomorrow\n")

	return strings.TrimSpace(sb.String()), nil
}

func writeSection(sb *strings.Builder, tasks []model.Task, trackNames map[string]string, empty string) {
	if len(tasks) == 0 {
		sb.WriteString(empty)
		return
	}
	for _, t := range tasks {
		sb.WriteString(formatLine(t, trackNames))
	}
}

func formatLine(t model.Task, trackNames map[string]string) string {
	var sb strings.Builder

	icon := "🟢"
	switch t.Priority {
	case model.PriorityHigh:
		icon = "🔴"
	case model.PriorityMedium:
		icon = "🟡"
	}
	if t.Completed {
		icon = "✅"
	}

	sb.WriteString(fmt.Sprintf("%s %s", icon, html.EscapeString(strings.TrimSpace(t.Title))))

	if t.TrackID != nil {
		if name, ok := trackNames[*t.TrackID]; ok && strings.TrimSpace(name) != "" {
			sb.WriteString(fmt.Sprintf(" <i>(%s)</i>", html.EscapeString(strings.TrimSpace(name))))
		}
	}
	if t.Timed() {
		sb.WriteString(fmt.Sprintf(" · %s–%s", *t.StartTime, *t.EndTime))
	}
	sb.WriteByte('\n')
	return sb.String()
}

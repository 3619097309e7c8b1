package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"college-organizer/internal/model"
)

// ExportVersion tags the payload shape; importers check nothing else.
const ExportVersion = "1.0"

// ExportPayload is the interchange format. Field formats are bit-exact
// with the stored ones (ISO dates, HH:MM times, #rrggbb colors).
type ExportPayload struct {
	Tasks      []model.Task    `json:"tasks"`
	Tracks     []model.Track   `json:"tracks"`
	Projects   []model.Project `json:"projects"`
	ExportedAt time.Time       `json:"exportedAt"`
	Version    string          `json:"version"`
}

// ImportResult tallies an additive import.
type ImportResult struct {
	Tracks   int      `json:"tracks"`
	Projects int      `json:"projects"`
	Tasks    int      `json:"tasks"`
	Skipped  []string `json:"skipped,omitempty"`
}

// ExportService builds export payloads and replays them back through the
// normal create path on import.
type ExportService struct {
	tasks    *TaskService
	tracks   *TrackService
	projects *ProjectService
}

func NewExportService(tasks *TaskService, tracks *TrackService, projects *ProjectService) *ExportService {
	return &ExportService{tasks: tasks, tracks: tracks, projects: projects}
}

func (s *ExportService) Export(ctx context.Context) (*ExportPayload, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	tracks, err := s.tracks.List(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ExportPayload{
		Tasks:      tasks,
		Tracks:     tracks,
		Projects:   projects,
		ExportedAt: time.Now().UTC(),
		Version:    ExportVersion,
	}, nil
}

// Import merges a payload into the existing data. Every record goes through
// the normal create path and gets a fresh id; foreign keys that point at
// other records of the same payload are remapped old→new. References to
// ids outside the payload are kept verbatim (dangling keys are tolerated
// everywhere else, too). Each record is an independent write: a bad record
// is skipped and reported, prior writes stay committed.
func (s *ExportService) Import(ctx context.Context, payload ExportPayload) (*ImportResult, error) {
	result := &ImportResult{}
	trackIDs := make(map[string]string, len(payload.Tracks))
	projectIDs := make(map[string]string, len(payload.Projects))

	for _, track := range payload.Tracks {
		created, err := s.tracks.Create(ctx, TrackInput{Name: &track.Name, Color: &track.Color})
		if err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("track %q: %v", track.Name, err))
			continue
		}
		trackIDs[track.ID] = created.ID
		result.Tracks++
	}

	for _, project := range payload.Projects {
		trackID := remap(trackIDs, project.TrackID)
		input := ProjectInput{
			Name:        &project.Name,
			Description: &project.Description,
			TrackID:     &trackID,
			Color:       project.Color,
		}
		created, err := s.projects.Create(ctx, input)
		if err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("project %q: %v", project.Name, err))
			continue
		}
		projectIDs[project.ID] = created.ID
		result.Projects++
	}

	for _, task := range payload.Tasks {
		input := TaskInput{
			Title:            &task.Title,
			Description:      &task.Description,
			Type:             &task.Type,
			Date:             &task.Date,
			EndDate:          task.EndDate,
			StartTime:        task.StartTime,
			EndTime:          task.EndTime,
			Completed:        &task.Completed,
			Priority:         &task.Priority,
			Recurring:        &task.Recurring,
			RecurringDays:    task.RecurringDays,
			RecurringEndDate: task.RecurringEndDate,
			SortOrder:        &task.SortOrder,
		}
		if task.TrackID != nil {
			mapped := remap(trackIDs, *task.TrackID)
			input.TrackID = &mapped
		}
		if task.ProjectID != nil {
			mapped := remap(projectIDs, *task.ProjectID)
			input.ProjectID = &mapped
		}
		if _, err := s.tasks.Create(ctx, input); err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("task %q: %v", task.Title, err))
			continue
		}
		result.Tasks++
	}

	return result, nil
}

func remap(ids map[string]string, old string) string {
	if fresh, ok := ids[old]; ok {
		return fresh
	}
	return old
}

// RenderCSV flattens the tasks into the spreadsheet export format.
func RenderCSV(tasks []model.Task, tracks []model.Track) (string, error) {
	names := trackNames(tracks)
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Title", "Type", "Date", "Priority", "Track", "Completed", "Description"}); err != nil {
		return "", err
	}
	for _, t := range tasks {
		completed := "No"
		if t.Completed {
			completed = "Yes"
		}
		row := []string{t.Title, string(t.Type), t.Date, string(t.Priority), trackNameFor(t, names), completed, t.Description}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}

// RenderText builds the plain-text export.
func RenderText(tasks []model.Task, tracks []model.Track, now time.Time) string {
	names := trackNames(tracks)
	var sb strings.Builder
	sb.WriteString("COLLEGE ORGANIZER - TASKS EXPORT\n\n")
	sb.WriteString(fmt.Sprintf("Exported: %s\n\n", now.Format(time.RFC1123)))
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	for i, t := range tasks {
		status := "○ Incomplete"
		if t.Completed {
			status = "✓ Completed"
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, t.Title))
		sb.WriteString(fmt.Sprintf("   Type: %s\n", t.Type))
		sb.WriteString(fmt.Sprintf("   Date: %s\n", t.Date))
		sb.WriteString(fmt.Sprintf("   Priority: %s\n", strings.ToUpper(string(t.Priority))))
		sb.WriteString(fmt.Sprintf("   Track: %s\n", trackNameFor(t, names)))
		sb.WriteString(fmt.Sprintf("   Status: %s\n", status))
		if t.Description != "" {
			sb.WriteString(fmt.Sprintf("   Description: %s\n", t.Description))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func trackNames(tracks []model.Track) map[string]string {
	names := make(map[string]string, len(tracks))
	for _, track := range tracks {
		names[track.ID] = track.Name
	}
	return names
}

func trackNameFor(t model.Task, names map[string]string) string {
	if t.TrackID == nil {
		return "None"
	}
	if name, ok := names[*t.TrackID]; ok {
		return name
	}
	return "Unknown"
}

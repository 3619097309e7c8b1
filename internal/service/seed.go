package service

import (
	"context"

	"college-organizer/internal/model"
	"college-organizer/internal/schedule"
)

// Seed populates an empty store with a couple of tracks and tasks so a
// fresh instance has something to show. A store with any existing task or
// track is left alone.
func Seed(ctx context.Context, tasks *TaskService, tracks *TrackService) error {
	existingTasks, err := tasks.List(ctx)
	if err != nil {
		return err
	}
	existingTracks, err := tracks.List(ctx)
	if err != nil {
		return err
	}
	if len(existingTasks) > 0 || len(existingTracks) > 0 {
		return nil
	}

	cs, err := tracks.Create(ctx, TrackInput{Name: ptr("Computer Science"), Color: ptr("#8b5cf6")})
	if err != nil {
		return err
	}
	math, err := tracks.Create(ctx, TrackInput{Name: ptr("Mathematics"), Color: ptr("#3b82f6")})
	if err != nil {
		return err
	}

	today := schedule.Today()
	tomorrow := schedule.AddDays(today, 1)

	seedTasks := []TaskInput{
		{
			Title:       ptr("Complete Algorithm Assignment"),
			Description: ptr("Implement binary search tree operations"),
			Type:        typePtr(model.TypeAssignment),
			Date:        &today,
			StartTime:   ptr("14:00"),
			EndTime:     ptr("16:00"),
			Priority:    prioPtr(model.PriorityHigh),
			TrackID:     &cs.ID,
		},
		{
			Title:       ptr("Study for Calculus Midterm"),
			Description: ptr("Review chapters 5-7"),
			Type:        typePtr(model.TypeExam),
			Date:        &tomorrow,
			Priority:    prioPtr(model.PriorityHigh),
			TrackID:     &math.ID,
		},
		{
			Title:       ptr("Team Meeting"),
			Description: ptr("Discuss project milestones"),
			Type:        typePtr(model.TypeMeeting),
			Date:        &today,
			StartTime:   ptr("10:00"),
			EndTime:     ptr("11:00"),
			Completed:   boolPtr(true),
			Priority:    prioPtr(model.PriorityMedium),
		},
	}
	for _, input := range seedTasks {
		if _, err := tasks.Create(ctx, input); err != nil {
			return err
		}
	}
	return nil
}

func ptr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func typePtr(t model.TaskType) *model.TaskType { return &t }

func prioPtr(p model.Priority) *model.Priority { return &p }

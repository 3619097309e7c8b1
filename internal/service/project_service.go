package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"college-organizer/internal/model"
	"college-organizer/internal/repository"
)

// ProjectInput carries the writable project fields.
type ProjectInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	TrackID     *string `json:"trackId"`
	Color       *string `json:"color"`
}

// ProjectService wraps project CRUD. The parent track must exist at
// creation time; the link is not enforced afterwards.
type ProjectService struct {
	projects *repository.ProjectRepository
	tracks   *repository.TrackRepository
}

func NewProjectService(projects *repository.ProjectRepository, tracks *repository.TrackRepository) *ProjectService {
	return &ProjectService{projects: projects, tracks: tracks}
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return project, nil
}

func (s *ProjectService) Create(ctx context.Context, input ProjectInput) (*model.Project, error) {
	var project model.Project
	applyProjectInput(&project, input)
	if err := s.validateProject(ctx, &project, true); err != nil {
		return nil, err
	}
	if err := s.projects.Create(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, input ProjectInput) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	applyProjectInput(project, input)
	if err := s.validateProject(ctx, project, input.TrackID != nil); err != nil {
		return nil, err
	}
	if err := s.projects.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	existed, err := s.projects.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrNotFound
	}
	return nil
}

func applyProjectInput(project *model.Project, input ProjectInput) {
	if input.Name != nil {
		project.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.TrackID != nil {
		project.TrackID = *input.TrackID
	}
	if input.Color != nil {
		project.Color = emptyToNil(*input.Color)
	}
}

func (s *ProjectService) validateProject(ctx context.Context, project *model.Project, checkTrack bool) error {
	if project.Name == "" {
		return invalid("name", "name is required")
	}
	if project.TrackID == "" {
		return invalid("trackId", "trackId is required")
	}
	if project.Color != nil && !validColor(*project.Color) {
		return invalid("color", "must be #rrggbb")
	}
	if checkTrack {
		if _, err := s.tracks.FindByID(ctx, project.TrackID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return invalid("trackId", "track does not exist")
			}
			return err
		}
	}
	return nil
}

package service

import (
	"context"
	"strings"

	"college-organizer/internal/model"
	"college-organizer/internal/repository"
)

// TrackInput carries the writable track fields.
type TrackInput struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// TrackService wraps track CRUD. Deleting a track never cascades to the
// tasks or projects referencing it.
type TrackService struct {
	tracks *repository.TrackRepository
}

func NewTrackService(tracks *repository.TrackRepository) *TrackService {
	return &TrackService{tracks: tracks}
}

func (s *TrackService) List(ctx context.Context) ([]model.Track, error) {
	return s.tracks.List(ctx)
}

func (s *TrackService) Get(ctx context.Context, id string) (*model.Track, error) {
	track, err := s.tracks.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return track, nil
}

func (s *TrackService) Create(ctx context.Context, input TrackInput) (*model.Track, error) {
	var track model.Track
	applyTrackInput(&track, input)
	if err := validateTrack(&track); err != nil {
		return nil, err
	}
	if err := s.tracks.Create(ctx, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

func (s *TrackService) Update(ctx context.Context, id string, input TrackInput) (*model.Track, error) {
	track, err := s.tracks.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	applyTrackInput(track, input)
	if err := validateTrack(track); err != nil {
		return nil, err
	}
	if err := s.tracks.Save(ctx, track); err != nil {
		return nil, err
	}
	return track, nil
}

func (s *TrackService) Delete(ctx context.Context, id string) error {
	existed, err := s.tracks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrNotFound
	}
	return nil
}

func applyTrackInput(track *model.Track, input TrackInput) {
	if input.Name != nil {
		track.Name = strings.TrimSpace(*input.Name)
	}
	if input.Color != nil {
		track.Color = *input.Color
	}
}

func validateTrack(track *model.Track) error {
	if track.Name == "" {
		return invalid("name", "name is required")
	}
	if !validColor(track.Color) {
		return invalid("color", "must be #rrggbb")
	}
	return nil
}

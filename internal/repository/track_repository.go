package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"college-organizer/internal/model"
)

// TrackRepository manages track records.
type TrackRepository struct {
	db *gorm.DB
}

func NewTrackRepository(db *gorm.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

// List returns all tracks ordered by name.
func (r *TrackRepository) List(ctx context.Context) ([]model.Track, error) {
	var tracks []model.Track
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tracks).Error; err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	return tracks, nil
}

func (r *TrackRepository) FindByID(ctx context.Context, id string) (*model.Track, error) {
	var track model.Track
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&track).Error; err != nil {
		return nil, err
	}
	return &track, nil
}

func (r *TrackRepository) Create(ctx context.Context, track *model.Track) error {
	track.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(track).Error; err != nil {
		return fmt.Errorf("create track: %w", err)
	}
	return nil
}

func (r *TrackRepository) Save(ctx context.Context, track *model.Track) error {
	if err := r.db.WithContext(ctx).Save(track).Error; err != nil {
		return fmt.Errorf("save track: %w", err)
	}
	return nil
}

// Delete removes a track without touching tasks or projects that
// reference it.
func (r *TrackRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Track{})
	if res.Error != nil {
		return false, fmt.Errorf("delete track: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

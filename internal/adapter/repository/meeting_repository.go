package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
	"github.com/exec-assistant-team/exec-assistant/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// FindByID retrieves a meeting by its ID, scoped to the organization
func (r *meetingRepository) FindByID(ctx context.Context, id, orgID uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&meeting).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// FindInWindow retrieves meetings starting within [from, to], ascending
func (r *meetingRepository) FindInWindow(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, from, to time.Time) ([]entities.Meeting, error) {
	var meetings []entities.Meeting
	query := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("start_time >= ? AND start_time <= ?", from, to)

	if executiveID != nil {
		query = query.Where("executive_id = ?", *executiveID)
	}

	err := query.Order("start_time ASC").Find(&meetings).Error
	return meetings, err
}

// FindRecentBefore retrieves up to limit meetings started before the given
// time, newest first, excluding the given meeting
func (r *meetingRepository) FindRecentBefore(ctx context.Context, orgID uuid.UUID, before time.Time, excludeID uuid.UUID, limit int) ([]entities.Meeting, error) {
	var meetings []entities.Meeting
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("start_time < ?", before).
		Where("id <> ?", excludeID).
		Order("start_time DESC").
		Limit(limit).
		Find(&meetings).Error
	return meetings, err
}

// UpdateBrief upserts the generated brief onto the meeting row
func (r *meetingRepository) UpdateBrief(ctx context.Context, id uuid.UUID, brief string, generatedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"brief":              brief,
			"brief_generated_at": generatedAt,
		}).
		Error
}

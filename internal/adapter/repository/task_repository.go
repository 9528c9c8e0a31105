package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
	"github.com/exec-assistant-team/exec-assistant/internal/domain/repositories"
)

// taskPriorityRank orders string priorities for SQL sorting
const taskPriorityRank = `CASE priority
	WHEN 'urgent' THEN 4
	WHEN 'high' THEN 3
	WHEN 'medium' THEN 2
	WHEN 'low' THEN 1
	ELSE 0
END DESC, due_date ASC NULLS LAST`

// taskRepository implements the TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &taskRepository{db: db}
}

// FindUpcomingOpen retrieves up to limit non-terminal tasks, priority
// descending then due date ascending with nulls last
func (r *taskRepository) FindUpcomingOpen(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, limit int) ([]entities.Task, error) {
	var tasks []entities.Task
	query := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("status NOT IN ?", []entities.TaskStatus{entities.TaskStatusCompleted, entities.TaskStatusCancelled})

	if executiveID != nil {
		query = query.Where("executive_id = ?", *executiveID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Order(taskPriorityRank).Find(&tasks).Error
	return tasks, err
}

// FindByRelatedMeeting retrieves all tasks linked to the given meeting
func (r *taskRepository) FindByRelatedMeeting(ctx context.Context, orgID, meetingID uuid.UUID) ([]entities.Task, error) {
	var tasks []entities.Task
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("related_meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

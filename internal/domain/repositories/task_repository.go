package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// FindUpcomingOpen retrieves up to limit non-terminal tasks ordered by
	// priority descending then due date ascending with nulls last.
	// Soft-deleted tasks are excluded. executiveID narrows the result
	// when non-nil.
	FindUpcomingOpen(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, limit int) ([]entities.Task, error)

	// FindByRelatedMeeting retrieves all tasks linked to the given
	// meeting, soft-deleted rows excluded.
	FindByRelatedMeeting(ctx context.Context, orgID, meetingID uuid.UUID) ([]entities.Task, error)
}

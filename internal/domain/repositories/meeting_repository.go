package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// FindByID retrieves a meeting by its ID, scoped to the organization
	FindByID(ctx context.Context, id, orgID uuid.UUID) (*entities.Meeting, error)

	// FindInWindow retrieves meetings whose start time falls within
	// [from, to], ordered ascending by start time. Soft-deleted meetings
	// are excluded. executiveID narrows the result when non-nil.
	FindInWindow(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, from, to time.Time) ([]entities.Meeting, error)

	// FindRecentBefore retrieves up to limit meetings that started before
	// the given time, newest first, excluding the given meeting ID and
	// soft-deleted rows.
	FindRecentBefore(ctx context.Context, orgID uuid.UUID, before time.Time, excludeID uuid.UUID, limit int) ([]entities.Meeting, error)

	// UpdateBrief upserts the generated brief onto the meeting row.
	// Concurrent regenerations race last-write-wins.
	UpdateBrief(ctx context.Context, id uuid.UUID, brief string, generatedAt time.Time) error
}

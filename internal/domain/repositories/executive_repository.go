package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

// ExecutiveRepository defines the interface for executive data access
type ExecutiveRepository interface {
	// FindActiveByID retrieves an active executive by ID within the
	// organization. An inactive executive is treated the same as a
	// missing row.
	FindActiveByID(ctx context.Context, id, orgID uuid.UUID) (*entities.Executive, error)
}

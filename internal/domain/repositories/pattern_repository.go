package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

// PatternRepository defines the interface for learned pattern access
type PatternRepository interface {
	// FindActive retrieves up to limit active patterns ordered by
	// confidence descending. executiveID narrows the result when non-nil.
	FindActive(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, limit int) ([]entities.Pattern, error)
}

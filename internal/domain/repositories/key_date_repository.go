package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

// KeyDateRepository defines the interface for key date data access
type KeyDateRepository interface {
	// FindInRange retrieves up to limit key dates with date in [from, to]
	// inclusive, ordered ascending by date. Soft-deleted rows are
	// excluded. executiveID narrows the result when non-nil.
	FindInRange(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, from, to time.Time, limit int) ([]entities.KeyDate, error)
}

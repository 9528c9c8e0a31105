package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

// ApprovalRepository defines the interface for approval data access
type ApprovalRepository interface {
	// FindPending retrieves up to limit approvals with status "pending",
	// ordered by urgency descending then creation time ascending.
	// executiveID narrows the result when non-nil.
	FindPending(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, limit int) ([]entities.Approval, error)
}

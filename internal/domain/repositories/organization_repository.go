package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// FindByID retrieves an organization by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Organization, error)
}

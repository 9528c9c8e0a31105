package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindByID retrieves a user by its ID, scoped to the organization
	FindByID(ctx context.Context, id, orgID uuid.UUID) (*entities.User, error)
}

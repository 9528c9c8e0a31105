package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

// ContactRepository defines the interface for contact directory access
type ContactRepository interface {
	// FindByEmails retrieves contacts matching any of the given emails
	// within the organization. Matching is case-insensitive.
	FindByEmails(ctx context.Context, orgID uuid.UUID, emails []string) ([]entities.Contact, error)
}

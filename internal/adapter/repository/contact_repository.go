package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
	"github.com/exec-assistant-team/exec-assistant/internal/domain/repositories"
)

// contactRepository implements the ContactRepository interface
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) repositories.ContactRepository {
	return &contactRepository{db: db}
}

// FindByEmails retrieves contacts matching any of the given emails within
// the organization, case-insensitive
func (r *contactRepository) FindByEmails(ctx context.Context, orgID uuid.UUID, emails []string) ([]entities.Contact, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	lowered := make([]string, 0, len(emails))
	for _, email := range emails {
		lowered = append(lowered, strings.ToLower(email))
	}

	var contacts []entities.Contact
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("LOWER(email) IN ?", lowered).
		Find(&contacts).Error
	return contacts, err
}

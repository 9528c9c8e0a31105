package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
	"github.com/exec-assistant-team/exec-assistant/internal/domain/repositories"
)

// organizationRepository implements the OrganizationRepository interface
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) repositories.OrganizationRepository {
	return &organizationRepository{db: db}
}

// FindByID retrieves an organization by its ID
func (r *organizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Organization, error) {
	var org entities.Organization
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&org).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

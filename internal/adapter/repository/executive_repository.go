package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
	"github.com/exec-assistant-team/exec-assistant/internal/domain/repositories"
)

// executiveRepository implements the ExecutiveRepository interface
type executiveRepository struct {
	db *gorm.DB
}

// NewExecutiveRepository creates a new executive repository
func NewExecutiveRepository(db *gorm.DB) repositories.ExecutiveRepository {
	return &executiveRepository{db: db}
}

// FindActiveByID retrieves an active executive by ID within the organization
func (r *executiveRepository) FindActiveByID(ctx context.Context, id, orgID uuid.UUID) (*entities.Executive, error) {
	var executive entities.Executive
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ? AND is_active = ?", id, orgID, true).
		First(&executive).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrExecutiveNotFound
		}
		return nil, err
	}
	return &executive, nil
}

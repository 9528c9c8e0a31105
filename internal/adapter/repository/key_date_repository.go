package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
	"github.com/exec-assistant-team/exec-assistant/internal/domain/repositories"
)

// keyDateRepository implements the KeyDateRepository interface
type keyDateRepository struct {
	db *gorm.DB
}

// NewKeyDateRepository creates a new key date repository
func NewKeyDateRepository(db *gorm.DB) repositories.KeyDateRepository {
	return &keyDateRepository{db: db}
}

// FindInRange retrieves up to limit key dates in [from, to] inclusive,
// ascending by date
func (r *keyDateRepository) FindInRange(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, from, to time.Time, limit int) ([]entities.KeyDate, error) {
	var keyDates []entities.KeyDate
	query := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("date >= ? AND date <= ?", from, to)

	if executiveID != nil {
		query = query.Where("executive_id = ?", *executiveID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Order("date ASC").Find(&keyDates).Error
	return keyDates, err
}

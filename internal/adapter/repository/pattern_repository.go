package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
	"github.com/exec-assistant-team/exec-assistant/internal/domain/repositories"
)

// patternRepository implements the PatternRepository interface
type patternRepository struct {
	db *gorm.DB
}

// NewPatternRepository creates a new pattern repository
func NewPatternRepository(db *gorm.DB) repositories.PatternRepository {
	return &patternRepository{db: db}
}

// FindActive retrieves up to limit active patterns, confidence descending
func (r *patternRepository) FindActive(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, limit int) ([]entities.Pattern, error) {
	var patterns []entities.Pattern
	query := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("is_active = ?", true)

	if executiveID != nil {
		query = query.Where("executive_id = ?", *executiveID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Order("confidence DESC").Find(&patterns).Error
	return patterns, err
}

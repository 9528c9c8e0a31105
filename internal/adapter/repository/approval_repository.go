package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
	"github.com/exec-assistant-team/exec-assistant/internal/domain/repositories"
)

// approvalUrgencyRank orders string urgencies for SQL sorting
const approvalUrgencyRank = `CASE urgency
	WHEN 'critical' THEN 4
	WHEN 'high' THEN 3
	WHEN 'normal' THEN 2
	WHEN 'low' THEN 1
	ELSE 0
END DESC, created_at ASC`

// approvalRepository implements the ApprovalRepository interface
type approvalRepository struct {
	db *gorm.DB
}

// NewApprovalRepository creates a new approval repository
func NewApprovalRepository(db *gorm.DB) repositories.ApprovalRepository {
	return &approvalRepository{db: db}
}

// FindPending retrieves up to limit pending approvals, urgency descending
// then creation time ascending
func (r *approvalRepository) FindPending(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, limit int) ([]entities.Approval, error) {
	var approvals []entities.Approval
	query := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("status = ?", entities.ApprovalStatusPending)

	if executiveID != nil {
		query = query.Where("executive_id = ?", *executiveID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Order(approvalUrgencyRank).Find(&approvals).Error
	return approvals, err
}

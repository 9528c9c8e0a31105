package entities

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus represents the lifecycle of an approval request
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// ApprovalUrgency represents how urgently an approval needs a decision
type ApprovalUrgency string

const (
	ApprovalUrgencyCritical ApprovalUrgency = "critical"
	ApprovalUrgencyHigh     ApprovalUrgency = "high"
	ApprovalUrgencyNormal   ApprovalUrgency = "normal"
	ApprovalUrgencyLow      ApprovalUrgency = "low"
)

// Approval represents a spend or decision request awaiting sign-off
type Approval struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index"`
	ExecutiveID    *uuid.UUID `json:"executive_id,omitempty" gorm:"type:uuid;index"`
	Title          string     `json:"title" gorm:"type:varchar(255);not null"`

	Status  ApprovalStatus  `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Urgency ApprovalUrgency `json:"urgency" gorm:"type:varchar(10);not null;default:'normal'"`

	Amount   *float64   `json:"amount,omitempty" gorm:"type:numeric(12,2)"`
	Currency string     `json:"currency" gorm:"type:varchar(3);default:'USD'"`
	DueDate  *time.Time `json:"due_date,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Approval
func (Approval) TableName() string {
	return "approvals"
}

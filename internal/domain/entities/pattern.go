package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Pattern is a learned behavioral signal (typical meeting times, preferred
// vendors, ...). The core consumes patterns but never computes them; Data
// is an opaque payload serialized as-is into prompts.
type Pattern struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index"`
	ExecutiveID    *uuid.UUID `json:"executive_id,omitempty" gorm:"type:uuid;index"`

	PatternType string            `json:"pattern_type" gorm:"type:varchar(50);not null"`
	Data        datatypes.JSONMap `json:"data" gorm:"type:jsonb;default:'{}'"`

	// Confidence is in [0,1]; SampleCount is how many observations back it
	Confidence  float64 `json:"confidence" gorm:"not null;default:0;check:confidence >= 0 AND confidence <= 1"`
	SampleCount int     `json:"sample_count" gorm:"not null;default:0"`
	IsActive    bool    `json:"is_active" gorm:"default:true;not null;index"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Pattern
func (Pattern) TableName() string {
	return "patterns"
}

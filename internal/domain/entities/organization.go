package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Organization is the tenant boundary; every record fetch is scoped by it
type Organization struct {
	ID         uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name       string            `json:"name" gorm:"type:varchar(255);not null"`
	AISettings datatypes.JSONMap `json:"ai_settings" gorm:"column:ai_settings;type:jsonb;default:'{}'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// PlaceholderOrganization is the degraded shape used when the organization
// row cannot be loaded.
func PlaceholderOrganization(id uuid.UUID) *Organization {
	return &Organization{
		ID:         id,
		Name:       "Organization",
		AISettings: datatypes.JSONMap{},
	}
}

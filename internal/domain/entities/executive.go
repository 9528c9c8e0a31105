package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Executive represents an executive that an assistant user supports.
// Preference bundles are opaque key-value blobs the core serializes but
// never interprets.
type Executive struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	FullName       string    `json:"full_name" gorm:"type:varchar(255);not null"`
	Title          *string   `json:"title,omitempty" gorm:"type:varchar(255)"`
	IsActive       bool      `json:"is_active" gorm:"default:true;not null"`

	SchedulingPreferences datatypes.JSONMap `json:"scheduling_preferences" gorm:"type:jsonb;default:'{}'"`
	TravelPreferences     datatypes.JSONMap `json:"travel_preferences" gorm:"type:jsonb;default:'{}'"`
	DietaryPreferences    datatypes.JSONMap `json:"dietary_preferences" gorm:"type:jsonb;default:'{}'"`
	CommunicationStyle    *string           `json:"communication_style,omitempty" gorm:"type:text"`
	OfficeAddress         *string           `json:"office_address,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Executive
func (Executive) TableName() string {
	return "executives"
}

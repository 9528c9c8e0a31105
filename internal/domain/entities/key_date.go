package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KeyDate represents a significant upcoming date (birthday, renewal,
// board meeting, anniversary) tracked for the organization
type KeyDate struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index"`
	ExecutiveID    *uuid.UUID `json:"executive_id,omitempty" gorm:"type:uuid;index"`
	Title          string     `json:"title" gorm:"type:varchar(255);not null"`
	Date           time.Time  `json:"date" gorm:"type:date;not null;index"`
	Category       *string    `json:"category,omitempty" gorm:"type:varchar(50)"`
	RelatedPerson  *string    `json:"related_person,omitempty" gorm:"type:varchar(255)"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name for KeyDate
func (KeyDate) TableName() string {
	return "key_dates"
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

// Contact represents an entry in the organization's contact directory
type Contact struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	FullName       string    `json:"full_name" gorm:"type:varchar(255);not null"`
	Email          string    `json:"email" gorm:"type:varchar(255);not null;index"`
	Title          *string   `json:"title,omitempty" gorm:"type:varchar(255)"`
	Company        *string   `json:"company,omitempty" gorm:"type:varchar(255)"`
	Category       *string   `json:"category,omitempty" gorm:"type:varchar(50)"` // "investor", "client", "vendor", ...

	// RelationshipStrength is a 1-5 score maintained by the CRM surface
	RelationshipStrength *int       `json:"relationship_strength,omitempty" gorm:"type:smallint"`
	LastContactDate      *time.Time `json:"last_contact_date,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

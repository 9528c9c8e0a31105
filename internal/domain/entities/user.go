package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User represents an assistant user (the requesting actor)
type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	Email          string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName       string    `json:"full_name" gorm:"type:varchar(255);not null"`
	Timezone       string    `json:"timezone" gorm:"type:varchar(50);default:'UTC';not null"`
	IsActive       bool      `json:"is_active" gorm:"default:true;not null"`

	// Preferences (stored as JSONB in PostgreSQL)
	NotificationPreferences datatypes.JSONMap `json:"notification_preferences" gorm:"type:jsonb;default:'{}'"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with default values
func NewUser(orgID uuid.UUID, email, fullName string) *User {
	now := time.Now()
	return &User{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Email:          email,
		FullName:       fullName,
		Timezone:       "UTC",
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// PlaceholderUser is the degraded shape used when the user row cannot be
// loaded; callers must still get a usable actor identity.
func PlaceholderUser(id uuid.UUID) *User {
	return &User{
		ID:       id,
		FullName: "User",
		Timezone: "UTC",
	}
}

package entities

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Attendee is one entry in a meeting's attendee list. Email may be empty
// for attendees added by name only.
type Attendee struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Meeting represents a calendar meeting owned by an organization
type Meeting struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index"`
	ExecutiveID    *uuid.UUID `json:"executive_id,omitempty" gorm:"type:uuid;index"`
	Title          string     `json:"title" gorm:"type:varchar(255);not null"`
	Description    *string    `json:"description,omitempty" gorm:"type:text"`
	StartTime      time.Time  `json:"start_time" gorm:"not null;index"`
	EndTime        time.Time  `json:"end_time" gorm:"not null"`
	LocationType   *string    `json:"location_type,omitempty" gorm:"type:varchar(50)"` // "video", "in_person", "phone"
	Location       *string    `json:"location,omitempty" gorm:"type:varchar(500)"`

	// Attendees is a JSONB array of {name, email} objects
	Attendees datatypes.JSON `json:"attendees" gorm:"type:jsonb;default:'[]'"`

	// Brief is the generated preparation document; one per meeting,
	// overwritten on regeneration (last write wins)
	Brief            *string    `json:"brief,omitempty" gorm:"type:text"`
	BriefGeneratedAt *time.Time `json:"brief_generated_at,omitempty"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// AttendeeList decodes the JSONB attendee array. A malformed payload
// yields an empty list rather than an error.
func (m *Meeting) AttendeeList() []Attendee {
	var attendees []Attendee
	if len(m.Attendees) == 0 {
		return attendees
	}
	if err := json.Unmarshal(m.Attendees, &attendees); err != nil {
		return nil
	}
	return attendees
}

// AttendeeEmails returns the lowercased non-empty attendee emails.
// Attendees without an email are skipped for matching but still count
// toward the attendee total.
func (m *Meeting) AttendeeEmails() []string {
	var emails []string
	for _, a := range m.AttendeeList() {
		if a.Email != "" {
			emails = append(emails, strings.ToLower(a.Email))
		}
	}
	return emails
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskPriority represents task priority
type TaskPriority string

const (
	TaskPriorityUrgent TaskPriority = "urgent"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// TaskStatus represents the current status of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// IsTerminal reports whether the status means no further work happens
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}

// Task represents a to-do item tracked for an executive or the org at large
type Task struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index"`
	ExecutiveID    *uuid.UUID `json:"executive_id,omitempty" gorm:"type:uuid;index"`
	Title          string     `json:"title" gorm:"type:varchar(255);not null"`
	Description    *string    `json:"description,omitempty" gorm:"type:text"`

	Status   TaskStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Priority TaskPriority `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`
	DueDate  *time.Time   `json:"due_date,omitempty" gorm:"index"`

	// RelatedMeetingID links a task to the meeting it was raised for
	RelatedMeetingID *uuid.UUID `json:"related_meeting_id,omitempty" gorm:"type:uuid;index"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

package assistant

import (
	"time"

	"github.com/google/uuid"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

// Fetch caps for the context snapshot. Render caps live in formatter.go.
const (
	maxUpcomingTasks    = 20
	maxPendingApprovals = 10
	maxUpcomingKeyDates = 15
	maxPatterns         = 20

	// keyDateHorizonDays bounds the upcoming key-date window, inclusive
	keyDateHorizonDays = 30
)

// ContextOptions controls what a snapshot includes. ExecutiveID scopes the
// snapshot to one executive; nil means no executive context. The Include
// flags default to true when nil.
type ContextOptions struct {
	UserID      uuid.UUID
	OrgID       uuid.UUID
	ExecutiveID *uuid.UUID
	Timezone    string

	IncludeTemporal *bool
	IncludePatterns *bool
}

func (o ContextOptions) includeTemporal() bool {
	return o.IncludeTemporal == nil || *o.IncludeTemporal
}

func (o ContextOptions) includePatterns() bool {
	return o.IncludePatterns == nil || *o.IncludePatterns
}

// TemporalContext holds the four bounded, time-scoped lists of a snapshot
type TemporalContext struct {
	TodayMeetings    []entities.Meeting  `json:"today_meetings"`
	UpcomingTasks    []entities.Task     `json:"upcoming_tasks"`
	PendingApprovals []entities.Approval `json:"pending_approvals"`
	UpcomingKeyDates []entities.KeyDate  `json:"upcoming_key_dates"`
}

// ContextSnapshot is the aggregated, point-in-time bundle assembled per
// request. It is built fresh on every call and discarded after formatting;
// there is no caching layer and no identity beyond the request.
type ContextSnapshot struct {
	GeneratedAt  time.Time              `json:"generated_at"`
	Timezone     string                 `json:"timezone"`
	User         *entities.User         `json:"user"`
	Organization *entities.Organization `json:"organization"`
	Executive    *entities.Executive    `json:"executive,omitempty"`
	Temporal     *TemporalContext       `json:"temporal,omitempty"`
	Patterns     []entities.Pattern     `json:"patterns,omitempty"`
}

// BriefResult summarizes a generated meeting brief. The brief text is the
// source of truth; the counts are denormalized from the sections actually
// included in the draft.
type BriefResult struct {
	MeetingID        uuid.UUID `json:"meeting_id"`
	MeetingTitle     string    `json:"meeting_title"`
	Brief            string    `json:"brief"`
	AttendeeCount    int       `json:"attendee_count"`
	RelatedTaskCount int       `json:"related_task_count"`
	PastMeetingCount int       `json:"past_meeting_count"`
}

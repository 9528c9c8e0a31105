package assistant

import "time"

// ContextResponse carries the formatted prompt block plus enough metadata
// for the caller to judge freshness and coverage without parsing the text
type ContextResponse struct {
	GeneratedAt    time.Time `json:"generated_at"`
	Timezone       string    `json:"timezone"`
	Prompt         string    `json:"prompt"`
	MeetingCount   int       `json:"meeting_count"`
	TaskCount      int       `json:"task_count"`
	ApprovalCount  int       `json:"approval_count"`
	KeyDateCount   int       `json:"key_date_count"`
	PatternCount   int       `json:"pattern_count"`
	ExecutiveFound bool      `json:"executive_found"`
}

// BriefResponse represents a generated meeting brief
type BriefResponse struct {
	MeetingID        string `json:"meeting_id"`
	MeetingTitle     string `json:"meeting_title"`
	Brief            string `json:"brief"`
	AttendeeCount    int    `json:"attendee_count"`
	RelatedTaskCount int    `json:"related_task_count"`
	PastMeetingCount int    `json:"past_meeting_count"`
}

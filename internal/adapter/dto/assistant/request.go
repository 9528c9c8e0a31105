package assistant

// BuildContextRequest represents the request to assemble a context snapshot
type BuildContextRequest struct {
	UserID          string  `json:"user_id" validate:"required,uuid"`
	OrganizationID  string  `json:"organization_id" validate:"required,uuid"`
	ExecutiveID     *string `json:"executive_id,omitempty" validate:"omitempty,uuid"`
	Timezone        string  `json:"timezone,omitempty"`
	IncludeTemporal *bool   `json:"include_temporal,omitempty"`
	IncludePatterns *bool   `json:"include_patterns,omitempty"`
}

// GenerateBriefRequest scopes the brief generation to an organization;
// the meeting ID comes from the path
type GenerateBriefRequest struct {
	OrganizationID string `json:"organization_id" validate:"required,uuid"`
}

package entities

import "errors"

// Domain errors
var (
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrExecutiveNotFound    = errors.New("executive not found")

	// ErrGenerationUnavailable marks a failed text-generation call so the
	// transport layer can answer 503 instead of a generic failure
	ErrGenerationUnavailable = errors.New("generation service unavailable")

	// Generic errors
	ErrInvalidRequest = errors.New("invalid request")
)

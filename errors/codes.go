package errors

// ErrorCode identifies the category of an AppError in responses and logs
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Meetings
	ErrorCode_MEETING_NOT_FOUND ErrorCode = 2000

	// Assistant
	ErrorCode_CONTEXT_BUILD_FAILED    ErrorCode = 3000
	ErrorCode_BRIEF_GENERATION_FAILED ErrorCode = 3001
	ErrorCode_LLM_UNAVAILABLE         ErrorCode = 3002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                 "OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_MEETING_NOT_FOUND:       "MEETING_NOT_FOUND",
	ErrorCode_CONTEXT_BUILD_FAILED:    "CONTEXT_BUILD_FAILED",
	ErrorCode_BRIEF_GENERATION_FAILED: "BRIEF_GENERATION_FAILED",
	ErrorCode_LLM_UNAVAILABLE:         "LLM_UNAVAILABLE",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

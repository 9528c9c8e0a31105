package handler

import (
	stdErrors "errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/exec-assistant-team/exec-assistant/errors"
	assistantdto "github.com/exec-assistant-team/exec-assistant/internal/adapter/dto/assistant"
	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
	"github.com/exec-assistant-team/exec-assistant/internal/usecase/assistant"
	"github.com/exec-assistant-team/exec-assistant/pkg/config"
)

// AssistantController handles context assembly and brief generation endpoints
type AssistantController struct {
	svc    assistant.Service
	cfg    *config.Config
	logger *zap.Logger
}

// NewAssistantController creates a new assistant controller
func NewAssistantController(svc assistant.Service, cfg *config.Config, logger *zap.Logger) *AssistantController {
	return &AssistantController{svc: svc, cfg: cfg, logger: logger}
}

// BuildContext assembles a context snapshot and returns it formatted as a
// prompt block alongside coverage counts
func (ac *AssistantController) BuildContext(c echo.Context) error {
	var req assistantdto.BuildContextRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("user_id must be a UUID"))
	}
	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("organization_id must be a UUID"))
	}

	timezone := req.Timezone
	if timezone == "" && ac.cfg != nil {
		timezone = ac.cfg.Assistant.DefaultTimezone
	}

	opts := assistant.ContextOptions{
		UserID:          userID,
		OrgID:           orgID,
		Timezone:        timezone,
		IncludeTemporal: req.IncludeTemporal,
		IncludePatterns: req.IncludePatterns,
	}
	if req.ExecutiveID != nil {
		execID, err := uuid.Parse(*req.ExecutiveID)
		if err != nil {
			return HandleError(ac.logger, c, errors.ErrInvalidArgument("executive_id must be a UUID"))
		}
		opts.ExecutiveID = &execID
	}

	snapshot, err := ac.svc.BuildContext(c.Request().Context(), opts)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrContextBuildFailed(err))
	}

	resp := assistantdto.ContextResponse{
		GeneratedAt:    snapshot.GeneratedAt,
		Timezone:       snapshot.Timezone,
		Prompt:         ac.svc.FormatContextForPrompt(snapshot),
		ExecutiveFound: snapshot.Executive != nil,
		PatternCount:   len(snapshot.Patterns),
	}
	if snapshot.Temporal != nil {
		resp.MeetingCount = len(snapshot.Temporal.TodayMeetings)
		resp.TaskCount = len(snapshot.Temporal.UpcomingTasks)
		resp.ApprovalCount = len(snapshot.Temporal.PendingApprovals)
		resp.KeyDateCount = len(snapshot.Temporal.UpcomingKeyDates)
	}

	return HandleSuccess(ac.logger, c, resp)
}

// GenerateBrief generates and persists a preparation brief for one meeting
func (ac *AssistantController) GenerateBrief(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("meeting id must be a UUID"))
	}

	var req assistantdto.GenerateBriefRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("organization_id must be a UUID"))
	}

	result, err := ac.svc.GenerateBrief(c.Request().Context(), meetingID, orgID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrMeetingNotFound) {
			return HandleError(ac.logger, c, errors.ErrMeetingNotFound(meetingID.String()))
		}
		if stdErrors.Is(err, entities.ErrGenerationUnavailable) {
			return HandleError(ac.logger, c, errors.ErrLLMUnavailable(err))
		}
		return HandleError(ac.logger, c, errors.ErrBriefGenerationFailed(err))
	}

	return HandleSuccess(ac.logger, c, assistantdto.BriefResponse{
		MeetingID:        result.MeetingID.String(),
		MeetingTitle:     result.MeetingTitle,
		Brief:            result.Brief,
		AttendeeCount:    result.AttendeeCount,
		RelatedTaskCount: result.RelatedTaskCount,
		PastMeetingCount: result.PastMeetingCount,
	})
}

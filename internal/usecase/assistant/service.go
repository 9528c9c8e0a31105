package assistant

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/repositories"
	"github.com/exec-assistant-team/exec-assistant/pkg/llm"
)

// Service defines the assistant context and brief generation operations
type Service interface {
	// BuildContext assembles a best-effort snapshot of what matters right
	// now for the requesting actor. Missing-but-optional data degrades to
	// documented placeholders; it never fails for a partial store outage.
	BuildContext(ctx context.Context, opts ContextOptions) (*ContextSnapshot, error)

	// FormatContextForPrompt renders a snapshot into a bounded prompt
	// block. Pure and deterministic.
	FormatContextForPrompt(snapshot *ContextSnapshot) string

	// GenerateBrief produces and persists a preparation brief for one
	// meeting. Fails with entities.ErrMeetingNotFound when the meeting
	// does not exist in the organization.
	GenerateBrief(ctx context.Context, meetingID, orgID uuid.UUID) (*BriefResult, error)
}

type assistantService struct {
	userRepo     repositories.UserRepository
	orgRepo      repositories.OrganizationRepository
	execRepo     repositories.ExecutiveRepository
	meetingRepo  repositories.MeetingRepository
	taskRepo     repositories.TaskRepository
	approvalRepo repositories.ApprovalRepository
	keyDateRepo  repositories.KeyDateRepository
	contactRepo  repositories.ContactRepository
	patternRepo  repositories.PatternRepository
	generator    llm.Generator
	logger       *zap.Logger

	// now is injected so day/window boundaries are testable
	now func() time.Time
}

// NewService constructs a new assistant service
func NewService(
	userRepo repositories.UserRepository,
	orgRepo repositories.OrganizationRepository,
	execRepo repositories.ExecutiveRepository,
	meetingRepo repositories.MeetingRepository,
	taskRepo repositories.TaskRepository,
	approvalRepo repositories.ApprovalRepository,
	keyDateRepo repositories.KeyDateRepository,
	contactRepo repositories.ContactRepository,
	patternRepo repositories.PatternRepository,
	generator llm.Generator,
	logger *zap.Logger,
) Service {
	return &assistantService{
		userRepo:     userRepo,
		orgRepo:      orgRepo,
		execRepo:     execRepo,
		meetingRepo:  meetingRepo,
		taskRepo:     taskRepo,
		approvalRepo: approvalRepo,
		keyDateRepo:  keyDateRepo,
		contactRepo:  contactRepo,
		patternRepo:  patternRepo,
		generator:    generator,
		logger:       logger,
		now:          time.Now,
	}
}

package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
	"github.com/exec-assistant-team/exec-assistant/internal/usecase/assistant"
	pkgvalidator "github.com/exec-assistant-team/exec-assistant/pkg/validator"
)

type stubAssistantService struct {
	snapshot *assistant.ContextSnapshot
	brief    *assistant.BriefResult
	err      error
}

func (s *stubAssistantService) BuildContext(ctx context.Context, opts assistant.ContextOptions) (*assistant.ContextSnapshot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.snapshot, nil
}

func (s *stubAssistantService) FormatContextForPrompt(snapshot *assistant.ContextSnapshot) string {
	return "formatted prompt"
}

func (s *stubAssistantService) GenerateBrief(ctx context.Context, meetingID, orgID uuid.UUID) (*assistant.BriefResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.brief, nil
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = pkgvalidator.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBuildContext_MissingUserID(t *testing.T) {
	ctrl := NewAssistantController(&stubAssistantService{}, nil, nil)

	c, rec := newTestContext(t, http.MethodPost, "/v1/assistant/context",
		`{"organization_id":"`+uuid.NewString()+`"}`)

	if err := ctrl.BuildContext(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBuildContext_OK(t *testing.T) {
	svc := &stubAssistantService{
		snapshot: &assistant.ContextSnapshot{
			Timezone: "UTC",
			Temporal: &assistant.TemporalContext{
				UpcomingTasks: make([]entities.Task, 3),
			},
		},
	}
	ctrl := NewAssistantController(svc, nil, nil)

	c, rec := newTestContext(t, http.MethodPost, "/v1/assistant/context",
		`{"user_id":"`+uuid.NewString()+`","organization_id":"`+uuid.NewString()+`"}`)

	if err := ctrl.BuildContext(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "formatted prompt") {
		t.Fatalf("response should carry the formatted prompt: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"task_count":3`) {
		t.Fatalf("response should carry coverage counts: %s", rec.Body.String())
	}
}

func TestGenerateBrief_MeetingNotFoundMapsTo404(t *testing.T) {
	ctrl := NewAssistantController(&stubAssistantService{err: entities.ErrMeetingNotFound}, nil, nil)

	meetingID := uuid.NewString()
	c, rec := newTestContext(t, http.MethodPost, "/v1/assistant/meetings/"+meetingID+"/brief",
		`{"organization_id":"`+uuid.NewString()+`"}`)
	c.SetParamNames("id")
	c.SetParamValues(meetingID)

	if err := ctrl.GenerateBrief(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}
}

func TestGenerateBrief_GenerationUnavailableMapsTo503(t *testing.T) {
	svcErr := fmt.Errorf("%w: model overloaded", entities.ErrGenerationUnavailable)
	ctrl := NewAssistantController(&stubAssistantService{err: svcErr}, nil, nil)

	meetingID := uuid.NewString()
	c, rec := newTestContext(t, http.MethodPost, "/v1/assistant/meetings/"+meetingID+"/brief",
		`{"organization_id":"`+uuid.NewString()+`"}`)
	c.SetParamNames("id")
	c.SetParamValues(meetingID)

	if err := ctrl.GenerateBrief(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Language model service temporarily unavailable") {
		t.Fatalf("response should explain the outage: %s", rec.Body.String())
	}
}

func TestGenerateBrief_BadMeetingID(t *testing.T) {
	ctrl := NewAssistantController(&stubAssistantService{}, nil, nil)

	c, rec := newTestContext(t, http.MethodPost, "/v1/assistant/meetings/not-a-uuid/brief",
		`{"organization_id":"`+uuid.NewString()+`"}`)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	if err := ctrl.GenerateBrief(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

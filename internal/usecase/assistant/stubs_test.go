package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

var errStoreDown = errors.New("store unavailable")

type stubUserRepo struct {
	user *entities.User
	err  error
}

func (s *stubUserRepo) FindByID(ctx context.Context, id, orgID uuid.UUID) (*entities.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type stubOrgRepo struct {
	org *entities.Organization
	err error
}

func (s *stubOrgRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Organization, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.org, nil
}

type stubExecRepo struct {
	executive *entities.Executive
	err       error
	calls     int
}

func (s *stubExecRepo) FindActiveByID(ctx context.Context, id, orgID uuid.UUID) (*entities.Executive, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.executive, nil
}

type stubMeetingRepo struct {
	meeting      *entities.Meeting
	findErr      error
	windowRows   []entities.Meeting
	windowErr    error
	recentRows   []entities.Meeting
	recentErr    error
	updateCalls  int
	updatedBrief string
	updateErr    error
}

func (s *stubMeetingRepo) FindByID(ctx context.Context, id, orgID uuid.UUID) (*entities.Meeting, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.meeting, nil
}

func (s *stubMeetingRepo) FindInWindow(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, from, to time.Time) ([]entities.Meeting, error) {
	if s.windowErr != nil {
		return nil, s.windowErr
	}
	return s.windowRows, nil
}

func (s *stubMeetingRepo) FindRecentBefore(ctx context.Context, orgID uuid.UUID, before time.Time, excludeID uuid.UUID, limit int) ([]entities.Meeting, error) {
	if s.recentErr != nil {
		return nil, s.recentErr
	}
	return s.recentRows, nil
}

func (s *stubMeetingRepo) UpdateBrief(ctx context.Context, id uuid.UUID, brief string, generatedAt time.Time) error {
	s.updateCalls++
	s.updatedBrief = brief
	return s.updateErr
}

type stubTaskRepo struct {
	openRows    []entities.Task
	openErr     error
	relatedRows []entities.Task
	relatedErr  error
	lastOrgID   uuid.UUID
}

func (s *stubTaskRepo) FindUpcomingOpen(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, limit int) ([]entities.Task, error) {
	s.lastOrgID = orgID
	if s.openErr != nil {
		return nil, s.openErr
	}
	if limit > 0 && len(s.openRows) > limit {
		return s.openRows[:limit], nil
	}
	return s.openRows, nil
}

func (s *stubTaskRepo) FindByRelatedMeeting(ctx context.Context, orgID, meetingID uuid.UUID) ([]entities.Task, error) {
	if s.relatedErr != nil {
		return nil, s.relatedErr
	}
	return s.relatedRows, nil
}

type stubApprovalRepo struct {
	rows []entities.Approval
	err  error
}

func (s *stubApprovalRepo) FindPending(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, limit int) ([]entities.Approval, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

type stubKeyDateRepo struct {
	rows     []entities.KeyDate
	err      error
	lastFrom time.Time
	lastTo   time.Time
}

func (s *stubKeyDateRepo) FindInRange(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, from, to time.Time, limit int) ([]entities.KeyDate, error) {
	s.lastFrom = from
	s.lastTo = to
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

type stubContactRepo struct {
	rows []entities.Contact
	err  error
}

func (s *stubContactRepo) FindByEmails(ctx context.Context, orgID uuid.UUID, emails []string) ([]entities.Contact, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

type stubPatternRepo struct {
	rows  []entities.Pattern
	err   error
	calls int
}

func (s *stubPatternRepo) FindActive(ctx context.Context, orgID uuid.UUID, executiveID *uuid.UUID, limit int) ([]entities.Pattern, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

type stubGenerator struct {
	response   string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (s *stubGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	s.lastSystem = systemPrompt
	s.lastUser = userPrompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

// testDeps bundles the stubs backing a service under test
type testDeps struct {
	users     *stubUserRepo
	orgs      *stubOrgRepo
	execs     *stubExecRepo
	meetings  *stubMeetingRepo
	tasks     *stubTaskRepo
	approvals *stubApprovalRepo
	keyDates  *stubKeyDateRepo
	contacts  *stubContactRepo
	patterns  *stubPatternRepo
	generator *stubGenerator
}

// fixedNow is the clock every test service runs on
var fixedNow = time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)

func newTestService() (*assistantService, *testDeps) {
	deps := &testDeps{
		users:     &stubUserRepo{},
		orgs:      &stubOrgRepo{},
		execs:     &stubExecRepo{},
		meetings:  &stubMeetingRepo{},
		tasks:     &stubTaskRepo{},
		approvals: &stubApprovalRepo{},
		keyDates:  &stubKeyDateRepo{},
		contacts:  &stubContactRepo{},
		patterns:  &stubPatternRepo{},
		generator: &stubGenerator{response: "generated brief"},
	}

	svc := &assistantService{
		userRepo:     deps.users,
		orgRepo:      deps.orgs,
		execRepo:     deps.execs,
		meetingRepo:  deps.meetings,
		taskRepo:     deps.tasks,
		approvalRepo: deps.approvals,
		keyDateRepo:  deps.keyDates,
		contactRepo:  deps.contacts,
		patternRepo:  deps.patterns,
		generator:    deps.generator,
		logger:       nil,
		now:          func() time.Time { return fixedNow },
	}
	return svc, deps
}

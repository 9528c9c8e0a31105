package assistant

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

func baseSnapshot() *ContextSnapshot {
	return &ContextSnapshot{
		GeneratedAt: fixedNow,
		Timezone:    "UTC",
		User:        &entities.User{ID: uuid.New(), FullName: "Dana Reyes", Timezone: "UTC"},
		Organization: &entities.Organization{
			ID:   uuid.New(),
			Name: "Acme Ventures",
		},
		Temporal: &TemporalContext{},
	}
}

func TestFormatContext_NoMeetingsLine(t *testing.T) {
	svc, _ := newTestService()

	out := svc.FormatContextForPrompt(baseSnapshot())
	if !strings.Contains(out, noMeetingsLine) {
		t.Fatalf("empty schedule must print the no-meetings line, got:\n%s", out)
	}

	snapshot := baseSnapshot()
	snapshot.Temporal.TodayMeetings = []entities.Meeting{{
		Title:     "Board sync",
		StartTime: fixedNow,
		EndTime:   fixedNow.Add(30 * time.Minute),
	}}
	out = svc.FormatContextForPrompt(snapshot)
	if strings.Contains(out, noMeetingsLine) {
		t.Fatalf("no-meetings line must not appear with meetings present, got:\n%s", out)
	}
	if !strings.Contains(out, "Board sync") {
		t.Fatalf("meeting title missing from schedule section:\n%s", out)
	}
}

func TestFormatContext_TaskOverflow(t *testing.T) {
	svc, _ := newTestService()
	snapshot := baseSnapshot()
	for i := 0; i < 14; i++ {
		snapshot.Temporal.UpcomingTasks = append(snapshot.Temporal.UpcomingTasks, entities.Task{
			Title:    fmt.Sprintf("task-%02d", i),
			Status:   entities.TaskStatusPending,
			Priority: entities.TaskPriorityHigh,
		})
	}

	out := svc.FormatContextForPrompt(snapshot)

	rendered := 0
	for i := 0; i < 14; i++ {
		if strings.Contains(out, fmt.Sprintf("task-%02d", i)) {
			rendered++
		}
	}
	if rendered != renderTaskLines {
		t.Fatalf("expected %d task lines, got %d", renderTaskLines, rendered)
	}
	if !strings.Contains(out, "... and 4 more") {
		t.Fatalf("expected overflow line with exact remaining count, got:\n%s", out)
	}
	if strings.Count(out, "... and") != 1 {
		t.Fatalf("overflow line must appear exactly once")
	}
}

func TestFormatContext_NoOverflowAtCap(t *testing.T) {
	svc, _ := newTestService()
	snapshot := baseSnapshot()
	for i := 0; i < renderTaskLines; i++ {
		snapshot.Temporal.UpcomingTasks = append(snapshot.Temporal.UpcomingTasks, entities.Task{
			Title:    fmt.Sprintf("task-%02d", i),
			Status:   entities.TaskStatusPending,
			Priority: entities.TaskPriorityLow,
		})
	}

	out := svc.FormatContextForPrompt(snapshot)
	if strings.Contains(out, "... and") {
		t.Fatalf("no overflow line expected at exactly %d tasks:\n%s", renderTaskLines, out)
	}
}

func TestFormatContext_KeyDateCap(t *testing.T) {
	svc, _ := newTestService()
	snapshot := baseSnapshot()
	for i := 0; i < 15; i++ {
		snapshot.Temporal.UpcomingKeyDates = append(snapshot.Temporal.UpcomingKeyDates, entities.KeyDate{
			Title: fmt.Sprintf("keydate-%02d", i),
			Date:  fixedNow.AddDate(0, 0, i),
		})
	}

	out := svc.FormatContextForPrompt(snapshot)
	rendered := 0
	for i := 0; i < 15; i++ {
		if strings.Contains(out, fmt.Sprintf("keydate-%02d", i)) {
			rendered++
		}
	}
	if rendered != renderKeyDateLines {
		t.Fatalf("expected %d key date lines, got %d", renderKeyDateLines, rendered)
	}
}

func TestFormatContext_PatternCapAndConfidence(t *testing.T) {
	svc, _ := newTestService()
	snapshot := baseSnapshot()
	for i := 0; i < 8; i++ {
		snapshot.Patterns = append(snapshot.Patterns, entities.Pattern{
			PatternType: fmt.Sprintf("pattern-%d", i),
			Data:        datatypes.JSONMap{"hour": 9},
			Confidence:  0.87,
		})
	}

	out := svc.FormatContextForPrompt(snapshot)
	rendered := 0
	for i := 0; i < 8; i++ {
		if strings.Contains(out, fmt.Sprintf("pattern-%d:", i)) {
			rendered++
		}
	}
	if rendered != renderPatternLines {
		t.Fatalf("expected %d pattern lines, got %d", renderPatternLines, rendered)
	}
	if !strings.Contains(out, "(confidence: 87%)") {
		t.Fatalf("confidence must render as a rounded percentage, got:\n%s", out)
	}
}

func TestFormatContext_ExecutiveBlock(t *testing.T) {
	svc, _ := newTestService()
	style := "prefers short written updates"
	address := "400 Mission St, San Francisco"
	snapshot := baseSnapshot()
	snapshot.Executive = &entities.Executive{
		FullName:           "Morgan Hale",
		CommunicationStyle: &style,
		OfficeAddress:      &address,
	}

	out := svc.FormatContextForPrompt(snapshot)
	if !strings.Contains(out, "Executive: Morgan Hale") {
		t.Fatalf("executive name missing:\n%s", out)
	}
	if !strings.Contains(out, style) || !strings.Contains(out, address) {
		t.Fatalf("non-null executive sub-fields must render:\n%s", out)
	}
	if strings.Contains(out, "Scheduling preferences") {
		t.Fatalf("empty preference bundle must not render:\n%s", out)
	}
}

func TestFormatContext_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	due := fixedNow.AddDate(0, 0, 2)
	amount := 1250.0
	snapshot := baseSnapshot()
	snapshot.Temporal.UpcomingTasks = []entities.Task{
		{Title: "Prepare deck", Status: entities.TaskStatusInProgress, Priority: entities.TaskPriorityUrgent, DueDate: &due},
	}
	snapshot.Temporal.PendingApprovals = []entities.Approval{
		{Title: "Travel booking", Urgency: entities.ApprovalUrgencyHigh, Amount: &amount, Currency: "USD"},
	}
	snapshot.Patterns = []entities.Pattern{
		{PatternType: "meeting_time", Data: datatypes.JSONMap{"preferred_hour": 9, "days": "tue,thu"}, Confidence: 0.72},
	}

	first := svc.FormatContextForPrompt(snapshot)
	second := svc.FormatContextForPrompt(snapshot)
	if first != second {
		t.Fatalf("formatter must be pure; outputs differ:\n%q\n%q", first, second)
	}
	if !strings.Contains(first, "$1250.00") {
		t.Fatalf("approval amount must render as currency:\n%s", first)
	}
}

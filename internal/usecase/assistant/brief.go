package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

const (
	// relatedMeetingCandidates is how many recent meetings are scanned for
	// attendee overlap; relatedMeetingLimit is how many survive
	relatedMeetingCandidates = 10
	relatedMeetingLimit      = 5

	// briefKeyDateHorizonDays bounds the brief's key-date window
	briefKeyDateHorizonDays = 14
	briefKeyDateLimit       = 5

	// descriptionSnippetLen truncates task descriptions in the draft
	descriptionSnippetLen = 120
)

const briefSystemPrompt = `You are an executive assistant preparing a meeting brief. ` +
	`Given the meeting details, attendee backgrounds, related past meetings, open tasks, ` +
	`and upcoming key dates below, write a concise preparation brief: who is attending and ` +
	`why they matter, what happened previously, what needs deciding or doing, and anything ` +
	`time-sensitive on the horizon. Be specific and skip sections with nothing to say.`

// GenerateBrief produces a preparation brief for one meeting and persists
// it onto the meeting row. The meeting fetch is the only hard dependency;
// every enrichment section is soft and simply omitted when its data is
// missing. Generation failure propagates, no fallback text is fabricated.
func (s *assistantService) GenerateBrief(ctx context.Context, meetingID, orgID uuid.UUID) (*BriefResult, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID, orgID)
	if err != nil {
		return nil, err
	}

	attendees := meeting.AttendeeList()
	emails := meeting.AttendeeEmails()

	// Contacts, past meetings, linked tasks, and key dates are mutually
	// independent once attendee emails are known; fan out and join. The
	// draft concatenation order below stays fixed regardless of
	// completion order.
	var (
		wg           sync.WaitGroup
		contacts     []entities.Contact
		pastMeetings []entities.Meeting
		tasks        []entities.Task
		keyDates     []entities.KeyDate
	)

	if len(emails) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			found, err := s.contactRepo.FindByEmails(ctx, orgID, emails)
			if err != nil {
				if s.logger != nil {
					s.logger.Warn("brief: contact lookup degraded", zap.Error(err))
				}
				return
			}
			contacts = found
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			related, err := s.findRelatedMeetings(ctx, meeting, emails)
			if err != nil {
				if s.logger != nil {
					s.logger.Warn("brief: related meeting search degraded", zap.Error(err))
				}
				return
			}
			pastMeetings = related
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		found, err := s.taskRepo.FindByRelatedMeeting(ctx, orgID, meeting.ID)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("brief: linked task fetch degraded", zap.Error(err))
			}
			return
		}
		tasks = found
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		dayStart, _ := dayBounds(s.now(), time.UTC)
		to := dayStart.AddDate(0, 0, briefKeyDateHorizonDays+1).Add(-time.Nanosecond)
		found, err := s.keyDateRepo.FindInRange(ctx, orgID, nil, dayStart, to, briefKeyDateLimit)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("brief: key date fetch degraded", zap.Error(err))
			}
			return
		}
		keyDates = found
	}()

	wg.Wait()

	draft := buildBriefDraft(meeting, attendees, contacts, pastMeetings, tasks, keyDates)

	text, err := s.generator.Generate(ctx, briefSystemPrompt, draft)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrGenerationUnavailable, err)
	}

	generatedAt := s.now()
	if err := s.meetingRepo.UpdateBrief(ctx, meeting.ID, text, generatedAt); err != nil {
		return nil, fmt.Errorf("failed to persist brief: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("brief generated",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Int("attendee_count", len(attendees)),
			zap.Int("contact_matches", len(contacts)),
			zap.Int("past_meetings", len(pastMeetings)),
			zap.Int("related_tasks", len(tasks)),
		)
	}

	return &BriefResult{
		MeetingID:        meeting.ID,
		MeetingTitle:     meeting.Title,
		Brief:            text,
		AttendeeCount:    len(attendees),
		RelatedTaskCount: len(tasks),
		PastMeetingCount: len(pastMeetings),
	}, nil
}

// findRelatedMeetings scans the most recent meetings before this one for
// attendee overlap. A candidate matches when any attendee email appears
// anywhere in its serialized record. Deliberately broad: an email substring
// in the description or title also counts as overlap.
func (s *assistantService) findRelatedMeetings(ctx context.Context, meeting *entities.Meeting, emails []string) ([]entities.Meeting, error) {
	candidates, err := s.meetingRepo.FindRecentBefore(ctx, meeting.OrganizationID, meeting.StartTime, meeting.ID, relatedMeetingCandidates)
	if err != nil {
		return nil, err
	}

	var related []entities.Meeting
	for _, candidate := range candidates {
		serialized, err := json.Marshal(candidate)
		if err != nil {
			continue
		}
		haystack := strings.ToLower(string(serialized))
		for _, email := range emails {
			if strings.Contains(haystack, email) {
				related = append(related, candidate)
				break
			}
		}
		if len(related) >= relatedMeetingLimit {
			break
		}
	}
	return related, nil
}

// buildBriefDraft assembles the structured draft handed to the generation
// call. Sections with no data are omitted; attendees without a contact
// match are summarized, never silently dropped.
func buildBriefDraft(
	meeting *entities.Meeting,
	attendees []entities.Attendee,
	contacts []entities.Contact,
	pastMeetings []entities.Meeting,
	tasks []entities.Task,
	keyDates []entities.KeyDate,
) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Meeting: %s\n", meeting.Title))
	sb.WriteString(fmt.Sprintf("Time: %s – %s\n",
		meeting.StartTime.Format("Monday, January 2, 2006 3:04 PM"),
		meeting.EndTime.Format("3:04 PM")))
	if meeting.Location != nil && *meeting.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", *meeting.Location))
	}
	if meeting.Description != nil && *meeting.Description != "" {
		sb.WriteString(fmt.Sprintf("Description: %s\n", *meeting.Description))
	}

	if len(attendees) > 0 {
		sb.WriteString(fmt.Sprintf("\nAttendees (%d):\n", len(attendees)))

		matched := make(map[string]entities.Contact, len(contacts))
		for _, c := range contacts {
			matched[strings.ToLower(c.Email)] = c
		}

		var unknown []entities.Attendee
		for _, a := range attendees {
			contact, ok := matched[strings.ToLower(a.Email)]
			if a.Email == "" || !ok {
				unknown = append(unknown, a)
				continue
			}
			sb.WriteString(formatContactLine(contact))
		}

		if len(unknown) > 0 {
			names := make([]string, 0, len(unknown))
			for _, a := range unknown {
				if a.Email != "" {
					names = append(names, fmt.Sprintf("%s <%s>", a.Name, a.Email))
				} else {
					names = append(names, a.Name)
				}
			}
			sb.WriteString(fmt.Sprintf("Not in contacts (%d): %s\n", len(unknown), strings.Join(names, ", ")))
		}
	}

	if len(pastMeetings) > 0 {
		sb.WriteString("\nRelated past meetings:\n")
		for _, m := range pastMeetings {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", m.StartTime.Format("Jan 2, 2006"), m.Title))
		}
	}

	if len(tasks) > 0 {
		sb.WriteString("\nOpen items for this meeting:\n")
		for _, t := range tasks {
			line := fmt.Sprintf("- [%s] %s (%s", t.Priority, t.Title, t.Status)
			if t.DueDate != nil {
				line += fmt.Sprintf(", due %s", t.DueDate.Format("Jan 2"))
			}
			line += ")"
			if t.Description != nil && *t.Description != "" {
				line += " — " + snippet(*t.Description, descriptionSnippetLen)
			}
			sb.WriteString(line + "\n")
		}
	}

	if len(keyDates) > 0 {
		sb.WriteString(fmt.Sprintf("\nKey dates in the next %d days:\n", briefKeyDateHorizonDays))
		for _, kd := range keyDates {
			line := fmt.Sprintf("- %s: %s", kd.Date.Format("Jan 2"), kd.Title)
			if kd.Category != nil && *kd.Category != "" {
				line += fmt.Sprintf(" [%s]", *kd.Category)
			}
			if kd.RelatedPerson != nil && *kd.RelatedPerson != "" {
				line += fmt.Sprintf(" (%s)", *kd.RelatedPerson)
			}
			sb.WriteString(line + "\n")
		}
	}

	return sb.String()
}

func formatContactLine(c entities.Contact) string {
	line := "- " + c.FullName
	if c.Title != nil && *c.Title != "" {
		line += " — " + *c.Title
	}
	if c.Company != nil && *c.Company != "" {
		line += ", " + *c.Company
	}
	if c.Category != nil && *c.Category != "" {
		line += fmt.Sprintf(" [%s]", *c.Category)
	}
	if c.RelationshipStrength != nil {
		line += fmt.Sprintf(" (relationship %d/5", *c.RelationshipStrength)
		if c.LastContactDate != nil {
			line += fmt.Sprintf(", last contact %s", c.LastContactDate.Format("Jan 2, 2006"))
		} else {
			line += ", no prior contact on record"
		}
		line += ")"
	} else if c.LastContactDate != nil {
		line += fmt.Sprintf(" (last contact %s)", c.LastContactDate.Format("Jan 2, 2006"))
	} else {
		line += " (no prior contact on record)"
	}
	return line + "\n"
}

// snippet truncates s to at most n runes, appending an ellipsis when cut
func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}

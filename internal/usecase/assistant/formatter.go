package assistant

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// Render caps. Together with the fetch caps these bound the formatted
// prompt to a predictable maximum size regardless of data volume.
const (
	renderTaskLines    = 10
	renderKeyDateLines = 8
	renderPatternLines = 5
)

const noMeetingsLine = "No meetings scheduled today."

// FormatContextForPrompt renders a snapshot into the prompt block consumed
// by the chat orchestrator. Section order is fixed; a section backed by an
// empty list is omitted, except today's schedule which always prints so a
// downstream reader can tell "no meetings" from "meetings unknown". Pure:
// identical snapshots yield byte-identical output.
func (s *assistantService) FormatContextForPrompt(snapshot *ContextSnapshot) string {
	var sb strings.Builder

	loc, err := time.LoadLocation(snapshot.Timezone)
	if err != nil {
		loc = time.UTC
	}
	localNow := snapshot.GeneratedAt.In(loc)

	// 1. Current time + user
	sb.WriteString(fmt.Sprintf("Current time: %s (%s)\n", localNow.Format("Monday, January 2, 2006 3:04 PM"), snapshot.Timezone))
	if snapshot.User != nil {
		sb.WriteString(fmt.Sprintf("User: %s\n", snapshot.User.FullName))
	}

	// 2. Executive block
	if exec := snapshot.Executive; exec != nil {
		sb.WriteString(fmt.Sprintf("\nExecutive: %s\n", exec.FullName))
		if len(exec.SchedulingPreferences) > 0 {
			sb.WriteString(fmt.Sprintf("  Scheduling preferences: %s\n", compactJSON(exec.SchedulingPreferences)))
		}
		if exec.CommunicationStyle != nil && *exec.CommunicationStyle != "" {
			sb.WriteString(fmt.Sprintf("  Communication style: %s\n", *exec.CommunicationStyle))
		}
		if exec.OfficeAddress != nil && *exec.OfficeAddress != "" {
			sb.WriteString(fmt.Sprintf("  Office address: %s\n", *exec.OfficeAddress))
		}
	}

	if snapshot.Temporal != nil {
		formatTemporal(&sb, snapshot.Temporal, loc)
	}

	// 7. Known patterns
	if len(snapshot.Patterns) > 0 {
		sb.WriteString("\nKnown patterns:\n")
		for i, p := range snapshot.Patterns {
			if i >= renderPatternLines {
				break
			}
			sb.WriteString(fmt.Sprintf("- %s: %s (confidence: %d%%)\n",
				p.PatternType, compactJSON(p.Data), int(math.Round(p.Confidence*100))))
		}
	}

	return sb.String()
}

func formatTemporal(sb *strings.Builder, temporal *TemporalContext, loc *time.Location) {
	// 3. Today's schedule: the one section that always appears, even empty
	sb.WriteString("\nToday's schedule:\n")
	if len(temporal.TodayMeetings) == 0 {
		sb.WriteString(noMeetingsLine + "\n")
	} else {
		for _, m := range temporal.TodayMeetings {
			line := fmt.Sprintf("- %s–%s: %s",
				m.StartTime.In(loc).Format("3:04 PM"),
				m.EndTime.In(loc).Format("3:04 PM"),
				m.Title)
			if m.LocationType != nil && *m.LocationType != "" {
				line += fmt.Sprintf(" [%s]", *m.LocationType)
			}
			if m.Location != nil && *m.Location != "" {
				line += fmt.Sprintf(" (%s)", *m.Location)
			}
			sb.WriteString(line + "\n")
		}
	}

	// 4. Pending tasks: at most renderTaskLines lines plus one overflow line
	if len(temporal.UpcomingTasks) > 0 {
		sb.WriteString("\nPending tasks:\n")
		for i, t := range temporal.UpcomingTasks {
			if i >= renderTaskLines {
				sb.WriteString(fmt.Sprintf("... and %d more\n", len(temporal.UpcomingTasks)-renderTaskLines))
				break
			}
			line := fmt.Sprintf("- [%s] %s (%s", t.Priority, t.Title, t.Status)
			if t.DueDate != nil {
				line += fmt.Sprintf(", due %s", t.DueDate.In(loc).Format("Jan 2"))
			}
			line += ")"
			sb.WriteString(line + "\n")
		}
	}

	// 5. Pending approvals: already capped upstream, render all
	if len(temporal.PendingApprovals) > 0 {
		sb.WriteString("\nPending approvals:\n")
		for _, a := range temporal.PendingApprovals {
			line := fmt.Sprintf("- [%s] %s", a.Urgency, a.Title)
			if a.Amount != nil {
				line += fmt.Sprintf(" — %s", formatAmount(*a.Amount, a.Currency))
			}
			if a.DueDate != nil {
				line += fmt.Sprintf(" (due %s)", a.DueDate.In(loc).Format("Jan 2"))
			}
			sb.WriteString(line + "\n")
		}
	}

	// 6. Upcoming key dates
	if len(temporal.UpcomingKeyDates) > 0 {
		sb.WriteString("\nUpcoming key dates:\n")
		for i, kd := range temporal.UpcomingKeyDates {
			if i >= renderKeyDateLines {
				break
			}
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
}

// compactJSON serializes an opaque payload deterministically (encoding/json
// sorts map keys)
func compactJSON(m map[string]interface{}) string {
	if len(m) == 0 {
		return "{}"
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// formatAmount renders a currency amount; non-USD currencies are prefixed
// with their ISO code
func formatAmount(amount float64, currency string) string {
	if currency == "" || currency == "USD" {
		return fmt.Sprintf("$%.2f", amount)
	}
	return fmt.Sprintf("%s %.2f", currency, amount)
}

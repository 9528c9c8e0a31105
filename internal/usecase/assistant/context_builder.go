package assistant

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/exec-assistant-team/exec-assistant/internal/domain/entities"
)

// BuildContext assembles a Context Snapshot for the requesting actor. The
// five top-level fetches (user, organization, executive, temporal bundle,
// patterns) run concurrently and are joined before the snapshot is
// returned; formatting must never observe a half-built snapshot. Each
// fetch degrades independently, so a failing store row costs its own
// section and nothing else.
func (s *assistantService) BuildContext(ctx context.Context, opts ContextOptions) (*ContextSnapshot, error) {
	timezone := opts.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	snapshot := &ContextSnapshot{
		GeneratedAt: s.now(),
		Timezone:    timezone,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		snapshot.User = s.fetchUser(ctx, opts)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		snapshot.Organization = s.fetchOrganization(ctx, opts)
	}()

	if opts.ExecutiveID != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snapshot.Executive = s.fetchExecutive(ctx, opts)
		}()
	}

	if opts.includeTemporal() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snapshot.Temporal = s.fetchTemporal(ctx, opts, snapshot.GeneratedAt, timezone)
		}()
	}

	if opts.includePatterns() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snapshot.Patterns = s.fetchPatterns(ctx, opts)
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// fetchUser loads the requesting user, degrading to a placeholder identity
// on any failure
func (s *assistantService) fetchUser(ctx context.Context, opts ContextOptions) *entities.User {
	user, err := s.userRepo.FindByID(ctx, opts.UserID, opts.OrgID)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("context: user fetch degraded",
				zap.String("user_id", opts.UserID.String()),
				zap.Error(err),
			)
		}
		return entities.PlaceholderUser(opts.UserID)
	}
	return user
}

// fetchOrganization loads the tenant, degrading to a placeholder on failure
func (s *assistantService) fetchOrganization(ctx context.Context, opts ContextOptions) *entities.Organization {
	org, err := s.orgRepo.FindByID(ctx, opts.OrgID)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("context: organization fetch degraded",
				zap.String("org_id", opts.OrgID.String()),
				zap.Error(err),
			)
		}
		return entities.PlaceholderOrganization(opts.OrgID)
	}
	return org
}

// fetchExecutive loads the scoped executive. A missing or inactive
// executive yields nil, which callers treat as "no executive context
// available" rather than an error.
func (s *assistantService) fetchExecutive(ctx context.Context, opts ContextOptions) *entities.Executive {
	executive, err := s.execRepo.FindActiveByID(ctx, *opts.ExecutiveID, opts.OrgID)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("context: executive fetch degraded",
				zap.String("executive_id", opts.ExecutiveID.String()),
				zap.Error(err),
			)
		}
		return nil
	}
	return executive
}

// fetchTemporal assembles the temporal bundle: four independent fetches
// fanned out and joined. One failing fetch logs, returns its empty list,
// and never fails the other three.
func (s *assistantService) fetchTemporal(ctx context.Context, opts ContextOptions, now time.Time, timezone string) *TemporalContext {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("context: unknown timezone, falling back to UTC",
				zap.String("timezone", timezone),
			)
		}
		loc = time.UTC
	}

	dayStart, dayEnd := dayBounds(now, loc)
	keyDateFrom := dayStart
	keyDateTo := dayStart.AddDate(0, 0, keyDateHorizonDays+1).Add(-time.Nanosecond)

	temporal := &TemporalContext{}
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		meetings, err := s.meetingRepo.FindInWindow(ctx, opts.OrgID, opts.ExecutiveID, dayStart, dayEnd)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("context: today's meetings fetch degraded", zap.Error(err))
			}
			return
		}
		temporal.TodayMeetings = meetings
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		tasks, err := s.taskRepo.FindUpcomingOpen(ctx, opts.OrgID, opts.ExecutiveID, maxUpcomingTasks)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("context: upcoming tasks fetch degraded", zap.Error(err))
			}
			return
		}
		temporal.UpcomingTasks = tasks
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		approvals, err := s.approvalRepo.FindPending(ctx, opts.OrgID, opts.ExecutiveID, maxPendingApprovals)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("context: pending approvals fetch degraded", zap.Error(err))
			}
			return
		}
		temporal.PendingApprovals = approvals
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		keyDates, err := s.keyDateRepo.FindInRange(ctx, opts.OrgID, opts.ExecutiveID, keyDateFrom, keyDateTo, maxUpcomingKeyDates)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("context: upcoming key dates fetch degraded", zap.Error(err))
			}
			return
		}
		temporal.UpcomingKeyDates = keyDates
	}()

	wg.Wait()
	return temporal
}

// fetchPatterns loads learned patterns. A failed fetch is
// indistinguishable from zero patterns detected.
func (s *assistantService) fetchPatterns(ctx context.Context, opts ContextOptions) []entities.Pattern {
	patterns, err := s.patternRepo.FindActive(ctx, opts.OrgID, opts.ExecutiveID, maxPatterns)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("context: patterns fetch degraded", zap.Error(err))
		}
		return nil
	}
	return patterns
}

// dayBounds returns the first and last instant of the local day containing
// t. The end is anchored to the next local midnight, not a 24h offset, so
// DST transition days keep their full 23- or 25-hour span.
func dayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc).Add(-time.Nanosecond)
	return start, end
}

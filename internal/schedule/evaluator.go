package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
)

// RuleID identifies which admission rule rejected a candidate
type RuleID string

const (
	RuleDurationBounds RuleID = "duration_bounds"
	RuleFloorOverlap   RuleID = "floor_overlap"
	RuleWeeklyQuota    RuleID = "weekly_quota"
	RulePastStart      RuleID = "past_start"
	RuleSunday         RuleID = "sunday"
	RuleWorkingHours   RuleID = "working_hours"
	RuleHorizon        RuleID = "booking_horizon"
)

// Violation is the structured rejection reason produced by Evaluate.
// Context carries the offending values (floor number, room number, computed
// totals) so callers can render a precise message.
type Violation struct {
	Rule    RuleID
	Message string
	Context map[string]string
}

// Error implements error
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Rule, v.Message)
}

// Candidate is a proposed reservation under evaluation
type Candidate struct {
	ID              uuid.UUID // uuid.Nil on create; own id on update, excluded from comparisons
	RoomID          int64
	RoomNumber      int
	FloorID         int64
	FloorNumber     int
	Start           time.Time
	DurationMinutes int
}

// End returns the exclusive end of the candidate's interval
func (c *Candidate) End() time.Time {
	return c.Start.Add(time.Duration(c.DurationMinutes) * time.Minute)
}

// Evaluate decides whether a candidate reservation is admissible against the
// floor's existing reservations. Rules are applied in a fixed order and the
// first failure wins; nil means the candidate passed every rule.
//
// existing must contain all reservations on the candidate's floor covering
// both the overlap window and the candidate's ISO week (the weekly-quota
// comparison set). The caller provides now explicitly so the evaluation stays
// deterministic and testable.
func Evaluate(c Candidate, existing []*domain.Reservation, now time.Time, rules Rules) *Violation {
	if v := checkDuration(c); v != nil {
		return v
	}
	if v := checkFloorOverlap(c, existing); v != nil {
		return v
	}
	if v := checkWeeklyQuota(c, existing, rules); v != nil {
		return v
	}
	if v := checkNotPast(c, now); v != nil {
		return v
	}
	if v := checkNotSunday(c, rules); v != nil {
		return v
	}
	if v := checkWorkingHours(c, rules); v != nil {
		return v
	}
	if v := checkHorizon(c, now, rules); v != nil {
		return v
	}
	return nil
}

// checkDuration enforces 40m <= duration <= 4h in exact 40-minute multiples
func checkDuration(c Candidate) *Violation {
	ctx := map[string]string{"duration_minutes": fmt.Sprintf("%d", c.DurationMinutes)}

	if c.DurationMinutes < domain.MinDurationMinutes {
		return &Violation{
			Rule:    RuleDurationBounds,
			Message: fmt.Sprintf("reservations must be at least %d minutes long", domain.MinDurationMinutes),
			Context: ctx,
		}
	}
	if c.DurationMinutes > domain.MaxDurationMinutes {
		return &Violation{
			Rule:    RuleDurationBounds,
			Message: fmt.Sprintf("reservations cannot exceed %d minutes", domain.MaxDurationMinutes),
			Context: ctx,
		}
	}
	if c.DurationMinutes%domain.SlotStepMinutes != 0 {
		return &Violation{
			Rule:    RuleDurationBounds,
			Message: fmt.Sprintf("duration must be a multiple of %d minutes", domain.SlotStepMinutes),
			Context: ctx,
		}
	}
	return nil
}

// checkFloorOverlap rejects intervals intersecting any reservation on the
// floor, regardless of room. Half-open comparison: touching endpoints are
// not an overlap.
func checkFloorOverlap(c Candidate, existing []*domain.Reservation) *Violation {
	interval := &domain.Reservation{ReservationTime: c.Start, DurationMinutes: c.DurationMinutes}
	for _, r := range existing {
		if c.ID != uuid.Nil && r.ID == c.ID {
			continue
		}
		if r.Overlaps(interval) {
			return &Violation{
				Rule:    RuleFloorOverlap,
				Message: fmt.Sprintf("another room on floor %d already has a reservation during this time", c.FloorNumber),
				Context: map[string]string{
					"floor":          fmt.Sprintf("%d", c.FloorNumber),
					"conflict_start": r.ReservationTime.Format(time.RFC3339),
					"conflict_end":   r.EndTime().Format(time.RFC3339),
				},
			}
		}
	}
	return nil
}

// checkWeeklyQuota caps the room's total reserved time inside the ISO week
// [Monday 00:00, next Monday 00:00) containing the candidate's start
func checkWeeklyQuota(c Candidate, existing []*domain.Reservation, rules Rules) *Violation {
	weekStart, weekEnd := WeekInterval(c.Start, rules.Location)

	total := c.DurationMinutes
	for _, r := range existing {
		if r.RoomID != c.RoomID {
			continue
		}
		if c.ID != uuid.Nil && r.ID == c.ID {
			continue
		}
		if r.ReservationTime.Before(weekStart) || !r.ReservationTime.Before(weekEnd) {
			continue
		}
		total += r.DurationMinutes
	}

	if total > domain.WeeklyQuotaMinutes {
		return &Violation{
			Rule:    RuleWeeklyQuota,
			Message: fmt.Sprintf("room %d cannot have more than %d minutes of reservations per week", c.RoomNumber, domain.WeeklyQuotaMinutes),
			Context: map[string]string{
				"room":          fmt.Sprintf("%d", c.RoomNumber),
				"total_minutes": fmt.Sprintf("%d", total),
				"quota_minutes": fmt.Sprintf("%d", domain.WeeklyQuotaMinutes),
			},
		}
	}
	return nil
}

// checkNotPast rejects start times earlier than now
func checkNotPast(c Candidate, now time.Time) *Violation {
	if c.Start.Before(now) {
		return &Violation{
			Rule:    RulePastStart,
			Message: "reservations cannot be made in the past",
			Context: map[string]string{"start": c.Start.Format(time.RFC3339)},
		}
	}
	return nil
}

// checkNotSunday rejects reservations starting on Sunday, building-local
func checkNotSunday(c Candidate, rules Rules) *Violation {
	if c.Start.In(rules.Location).Weekday() == time.Sunday {
		return &Violation{
			Rule:    RuleSunday,
			Message: "reservations cannot be made on Sundays",
			Context: map[string]string{"start": c.Start.In(rules.Location).Format(time.RFC3339)},
		}
	}
	return nil
}

// checkWorkingHours requires both the start and end time-of-day, in the
// building's timezone, to fall within the configured window (inclusive)
func checkWorkingHours(c Candidate, rules Rules) *Violation {
	start := c.Start.In(rules.Location)
	end := c.End().In(rules.Location)

	startMinutes := start.Hour()*60 + start.Minute()
	endMinutes := end.Hour()*60 + end.Minute()

	ctx := map[string]string{
		"start":  start.Format(domain.TimeFormat),
		"end":    end.Format(domain.TimeFormat),
		"window": fmt.Sprintf("%s-%s", formatMinutes(rules.OpenMinutes), formatMinutes(rules.CloseMinutes)),
	}

	if startMinutes < rules.OpenMinutes || startMinutes > rules.CloseMinutes {
		return &Violation{
			Rule:    RuleWorkingHours,
			Message: fmt.Sprintf("reservations can only start between %s and %s", formatMinutes(rules.OpenMinutes), formatMinutes(rules.CloseMinutes)),
			Context: ctx,
		}
	}
	if endMinutes < rules.OpenMinutes || endMinutes > rules.CloseMinutes {
		return &Violation{
			Rule:    RuleWorkingHours,
			Message: fmt.Sprintf("reservations must end by %s", formatMinutes(rules.CloseMinutes)),
			Context: ctx,
		}
	}
	return nil
}

// checkHorizon keeps the start within the current local week plus the next one
func checkHorizon(c Candidate, now time.Time, rules Rules) *Violation {
	horizonStart, horizonEnd := HorizonBounds(now, rules.Location)
	start := c.Start.In(rules.Location)

	if start.Before(horizonStart) || start.After(horizonEnd) {
		return &Violation{
			Rule:    RuleHorizon,
			Message: "reservations can only be made within the current and next week",
			Context: map[string]string{
				"start":         start.Format(time.RFC3339),
				"horizon_start": horizonStart.Format(time.RFC3339),
				"horizon_end":   horizonEnd.Format(time.RFC3339),
			},
		}
	}
	return nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

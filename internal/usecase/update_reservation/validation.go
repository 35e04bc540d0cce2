package update_reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	"github.com/gasparllamazares/LRM-ReservationService/internal/schedule"
)

// validateRequest проверяет корректность запроса
func validateRequest(req *Request) error {
	if req.ReservationID == uuid.Nil {
		return fmt.Errorf("%w: reservation_id is required", ErrInvalidInput)
	}

	if req.IndividualID <= 0 {
		return fmt.Errorf("%w: individual_id must be positive", ErrInvalidInput)
	}

	if req.ReservationTime == nil && req.DurationMinutes == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.ReservationTime != nil && req.ReservationTime.IsZero() {
		return fmt.Errorf("%w: reservation_time must not be zero", ErrInvalidInput)
	}

	return nil
}

// comparisonWindow считает окно загрузки броней этажа: покрывает
// неделю кандидата (для квоты) и окрестность интервала (для пересечений)
func comparisonWindow(start time.Time, durationMinutes int, rules schedule.Rules) (time.Time, time.Time) {
	weekStart, weekEnd := schedule.WeekInterval(start, rules.Location)

	overlapFrom := start.Add(-time.Duration(domain.MaxDurationMinutes) * time.Minute)
	overlapTo := start.Add(time.Duration(durationMinutes) * time.Minute)

	from := weekStart
	if overlapFrom.Before(from) {
		from = overlapFrom
	}

	to := weekEnd
	if overlapTo.After(to) {
		to = overlapTo
	}

	return from, to
}

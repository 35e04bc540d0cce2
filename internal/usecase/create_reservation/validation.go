package create_reservation

import (
	"fmt"
	"time"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	"github.com/gasparllamazares/LRM-ReservationService/internal/schedule"
)

// validateRequest валидирует входные данные запроса
// Длительность по умолчанию подставляется до валидации
func validateRequest(req *Request) error {
	if req.IndividualID <= 0 {
		return fmt.Errorf("%w: individualID must be positive", ErrInvalidInput)
	}

	if req.ReservationTime.IsZero() {
		return fmt.Errorf("%w: reservationTime is required", ErrInvalidInput)
	}

	if req.DurationMinutes == 0 {
		req.DurationMinutes = domain.DefaultDurationMinutes
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	return nil
}

// comparisonWindow вычисляет окно выборки броней этажа, покрывающее и проверку
// пересечений, и недельную квоту кандидата
//
// Для пересечений достаточно броней, начавшихся не раньше чем за максимальную
// длительность до начала кандидата; для квоты нужна вся ISO-неделя кандидата.
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

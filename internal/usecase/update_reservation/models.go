package update_reservation

import (
	"time"

	"github.com/google/uuid"
)

// Request запрос на изменение брони
// Поля-указатели необязательны: nil означает "оставить как было"
type Request struct {
	ReservationID   uuid.UUID  `json:"reservation_id"`
	IndividualID    int64      `json:"individual_id"`
	ReservationTime *time.Time `json:"reservation_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
}

// Response ответ с обновленной бронью
type Response struct {
	ID              uuid.UUID `json:"id"`
	RoomNumber      int       `json:"room_number"`
	FloorNumber     int       `json:"floor_number"`
	ReservationTime time.Time `json:"reservation_time"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

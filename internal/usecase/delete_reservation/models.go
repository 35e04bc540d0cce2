package delete_reservation

import "github.com/google/uuid"

// Request запрос на отмену брони
type Request struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	IndividualID  int64     `json:"individual_id"`
}

// Response ответ на отмену брони
type Response struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}

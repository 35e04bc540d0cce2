package update_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	updateReservation "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/update_reservation"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/ptr"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/types"
)

// UpdateReservationRequest HTTP request model
// Оба поля необязательны: отсутствующее поле остается без изменений,
// но дата и время меняются только вместе
type UpdateReservationRequest struct {
	ReservationDate *string `json:"reservationDate,omitempty"` // "2025-10-15"
	StartTime       *string `json:"startTime,omitempty"`       // "10:00"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	RoomNumber      int       `json:"roomNumber"`
	FloorNumber     int       `json:"floorNumber"`
	ReservationDate string    `json:"reservationDate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       string    `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID uuid.UUID, individualID int64, loc *time.Location) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ReservationID:   reservationID,
		IndividualID:    individualID,
		DurationMinutes: r.DurationMinutes,
	}

	if r.ReservationDate != nil || r.StartTime != nil {
		if r.ReservationDate == nil || r.StartTime == nil {
			return nil, errMissingDatePart
		}

		date, err := time.ParseInLocation(domain.DateFormat, *r.ReservationDate, loc)
		if err != nil {
			return nil, err
		}

		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}

		mins, err := startTime.Minutes()
		if err != nil {
			return nil, err
		}

		req.ReservationTime = ptr.Ptr(time.Date(date.Year(), date.Month(), date.Day(), mins/60, mins%60, 0, 0, loc))
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response, loc *time.Location) *ReservationResponse {
	start := resp.ReservationTime.In(loc)
	end := start.Add(time.Duration(resp.DurationMinutes) * time.Minute)

	return &ReservationResponse{
		ID:              resp.ID,
		RoomNumber:      resp.RoomNumber,
		FloorNumber:     resp.FloorNumber,
		ReservationDate: start.Format(domain.DateFormat),
		StartTime:       types.NewTimeString(start).String(),
		EndTime:         types.NewTimeString(end).String(),
		DurationMinutes: resp.DurationMinutes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

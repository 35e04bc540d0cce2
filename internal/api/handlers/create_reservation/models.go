package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	createReservation "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/create_reservation"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ReservationDate string `json:"reservationDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`       // "10:00"
	DurationMinutes int    `json:"durationMinutes,omitempty"`
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
	IndividualName  string    `json:"individualName"`
	CreatedAt       string    `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и время трактуются в часовом поясе здания
func (r *CreateReservationRequest) ToUseCaseRequest(individualID int64, loc *time.Location) (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.ParseInLocation(domain.DateFormat, r.ReservationDate, loc)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	mins, err := startTime.Minutes()
	if err != nil {
		return nil, err
	}
	reservationTime := time.Date(date.Year(), date.Month(), date.Day(), mins/60, mins%60, 0, 0, loc)

	return &createReservation.Request{
		IndividualID:    individualID,
		ReservationTime: reservationTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response, loc *time.Location) *ReservationResponse {
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
		IndividualName:  resp.IndividualName,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

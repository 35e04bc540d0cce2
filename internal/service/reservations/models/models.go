package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/types"
)

// Request модели

// GetFloorReservationsRequest запрос на получение броней этажа
type GetFloorReservationsRequest struct {
	FloorID int64      `json:"floorId"`
	From    *time.Time `json:"from,omitempty"` // Начало периода (опционально)
	To      *time.Time `json:"to,omitempty"`   // Конец периода (опционально)
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	RoomID          int64     `json:"roomId"`
	RoomNumber      int       `json:"roomNumber,omitempty"`
	IndividualID    int64     `json:"individualId"`
	FloorID         int64     `json:"floorId"`
	ReservationDate string    `json:"reservationDate"` // "2025-10-15"
	StartTime       string    `json:"startTime"`       // "10:00"
	EndTime         string    `json:"endTime"`         // "10:40"
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
// Даты и времена отдаются в часовом поясе здания
func FromDomainReservation(r *domain.Reservation, loc *time.Location) *ReservationResponse {
	if r == nil {
		return nil
	}

	start := r.ReservationTime.In(loc)
	end := r.EndTime().In(loc)

	return &ReservationResponse{
		ID:              r.ID,
		RoomID:          r.RoomID,
		IndividualID:    r.IndividualID,
		FloorID:         r.FloorID,
		ReservationDate: start.Format(domain.DateFormat),
		StartTime:       types.NewTimeString(start).String(),
		EndTime:         types.NewTimeString(end).String(),
		DurationMinutes: r.DurationMinutes,
		CreatedAt:       r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
// roomNumbers сопоставляет id комнат с их номерами; nil допустим
func FromDomainReservationList(reservations []*domain.Reservation, roomNumbers map[int64]int, loc *time.Location) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if r := FromDomainReservation(reservation, loc); r != nil {
			r.RoomNumber = roomNumbers[reservation.RoomID]
			resp.Reservations[i] = *r
		}
	}

	return resp
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reservation represents a booked time interval on a floor's shared washing machine.
// FloorID is snapshotted from the room's floor at creation and never changes
// afterwards, even if the room is later reassigned.
type Reservation struct {
	ID              uuid.UUID
	RoomID          int64
	IndividualID    int64
	FloorID         int64
	ReservationTime time.Time
	DurationMinutes int
	CreatedAt       time.Time
}

// Duration returns the reservation length as a time.Duration
func (r *Reservation) Duration() time.Duration {
	return time.Duration(r.DurationMinutes) * time.Minute
}

// EndTime returns the exclusive end of the reserved interval
func (r *Reservation) EndTime() time.Time {
	return r.ReservationTime.Add(r.Duration())
}

// HasStarted reports whether the reservation's start time has passed.
// A started reservation can no longer be modified or cancelled by its owner.
func (r *Reservation) HasStarted(now time.Time) bool {
	return !r.ReservationTime.After(now)
}

// OwnedBy reports whether the given individual created this reservation
func (r *Reservation) OwnedBy(individualID int64) bool {
	return r.IndividualID == individualID
}

// Overlaps reports whether two reservations' half-open intervals intersect.
// Touching endpoints do not overlap.
func (r *Reservation) Overlaps(other *Reservation) bool {
	return r.ReservationTime.Before(other.EndTime()) && r.EndTime().After(other.ReservationTime)
}

// FloorReservationsFilter фильтр для выборки бронирований этажа
type FloorReservationsFilter struct {
	FloorID   int64      // Обязательный параметр
	From      *time.Time // Начало окна (опционально)
	To        *time.Time // Конец окна, исключительно (опционально)
	ExcludeID *uuid.UUID // Исключить бронь (используется при обновлении)
}

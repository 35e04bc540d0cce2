package get_floor_reservations

import (
	"context"

	"github.com/gasparllamazares/LRM-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetFloorReservations(ctx context.Context, req *models.GetFloorReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_user_reservations

import (
	"context"

	"github.com/gasparllamazares/LRM-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetIndividualReservations(ctx context.Context, individualID int64) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package assign_occupant

import (
	"context"

	"github.com/gasparllamazares/LRM-ReservationService/internal/service/rooms/models"
)

type RoomService interface {
	AssignIndividual(ctx context.Context, actorID int64, req *models.AssignRequest) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

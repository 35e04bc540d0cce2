package get_floor_summary

import (
	"context"

	"github.com/gasparllamazares/LRM-ReservationService/internal/service/rooms/models"
)

type RoomService interface {
	GetFloorSummary(ctx context.Context, floorID int64) (*models.FloorSummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

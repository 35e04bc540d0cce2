package reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	GetByIndividual(ctx context.Context, individualID int64) ([]*domain.Reservation, error)
	GetByFloorWithFilter(ctx context.Context, filter domain.FloorReservationsFilter) ([]*domain.Reservation, error)
}

// BuildingRepository интерфейс репозитория здания
type BuildingRepository interface {
	GetIndividualByID(ctx context.Context, id int64) (*domain.Individual, error)
	GetFloorByID(ctx context.Context, id int64) (*domain.Floor, error)
	RoomNumbersByFloor(ctx context.Context, floorID int64) (map[int64]int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

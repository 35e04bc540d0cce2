package rooms

import (
	"context"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	"github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/building"
)

// BuildingRepository интерфейс репозитория здания
type BuildingRepository interface {
	GetFloorByID(ctx context.Context, id int64) (*domain.Floor, error)
	GetRoomByID(ctx context.Context, id int64) (*domain.Room, error)
	GetRoomByNumber(ctx context.Context, roomNumber int) (*domain.Room, error)
	GetIndividualByID(ctx context.Context, id int64) (*domain.Individual, error)
	GetIndividualsByRoom(ctx context.Context, roomID int64) ([]*domain.Individual, error)
	CountRoomOccupants(ctx context.Context, roomID int64) (int, error)
	SetIndividualRoom(ctx context.Context, individualID int64, roomID *int64) error
	GetFloorSummary(ctx context.Context, floorID int64) (*building.FloorSummary, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

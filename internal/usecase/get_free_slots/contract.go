package get_free_slots

import (
	"context"
	"time"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByFloorWithFilter(ctx context.Context, filter domain.FloorReservationsFilter) ([]*domain.Reservation, error)
}

// BuildingRepository интерфейс репозитория здания
type BuildingRepository interface {
	GetFloorByID(ctx context.Context, id int64) (*domain.Floor, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

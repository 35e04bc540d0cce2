package create_reservation

import (
	"context"
	"time"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByFloorWithFilter(ctx context.Context, filter domain.FloorReservationsFilter) ([]*domain.Reservation, error)
}

// BuildingRepository интерфейс репозитория справочников здания
type BuildingRepository interface {
	GetIndividualByID(ctx context.Context, id int64) (*domain.Individual, error)
	GetRoomByID(ctx context.Context, id int64) (*domain.Room, error)
	GetFloorByID(ctx context.Context, id int64) (*domain.Floor, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

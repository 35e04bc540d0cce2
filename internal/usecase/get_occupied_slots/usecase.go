package get_occupied_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	buildingRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/building"
	"github.com/gasparllamazares/LRM-ReservationService/internal/schedule"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/ptr"
)

// occupiedRangeDays расписание показывается на текущую и следующую локальные недели
const occupiedRangeDays = 14

// UseCase use case для получения занятых интервалов этажа
type UseCase struct {
	reservationRepo ReservationRepository
	buildingRepo    BuildingRepository
	rules           schedule.Rules
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	buildingRepo BuildingRepository,
	rules schedule.Rules,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		buildingRepo:    buildingRepo,
		rules:           rules,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения занятых интервалов
// Диапазон фиксирован: с понедельника текущей локальной недели
// на четырнадцать дней вперед, по одному блоку на каждый день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Debug("GetOccupiedSlots: floor=%d", req.FloorID)

	// 1. Валидация входных данных
	if req.FloorID <= 0 {
		return nil, fmt.Errorf("%w: floor_id must be positive", ErrInvalidInput)
	}

	// 2. Получаем этаж
	floor, err := uc.buildingRepo.GetFloorByID(ctx, req.FloorID)
	if err != nil {
		if errors.Is(err, buildingRepo.ErrFloorNotFound) {
			uc.logger.Warn("GetOccupiedSlots: floor id=%d not found", req.FloorID)
			return nil, ErrFloorNotFound
		}
		uc.logger.Error("GetOccupiedSlots: failed to get floor id=%d: %v", req.FloorID, err)
		return nil, fmt.Errorf("%w: failed to get floor: %v", ErrInternal, err)
	}

	// 3. Диапазон: понедельник текущей локальной недели + 14 дней
	now := uc.timeProvider.Now()
	from := schedule.StartOfWeek(now, uc.rules.Location)
	to := from.AddDate(0, 0, occupiedRangeDays)

	// 4. Загружаем брони этажа диапазона
	reservations, err := uc.reservationRepo.GetByFloorWithFilter(ctx, domain.FloorReservationsFilter{
		FloorID: floor.ID,
		From:    ptr.Ptr(from),
		To:      ptr.Ptr(to),
	})
	if err != nil {
		uc.logger.Error("GetOccupiedSlots: failed to get floor reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get floor reservations: %v", ErrInternal, err)
	}

	// 5. Номера комнат этажа для атрибуции интервалов
	roomNumbers, err := uc.buildingRepo.RoomNumbersByFloor(ctx, floor.ID)
	if err != nil {
		uc.logger.Error("GetOccupiedSlots: failed to get room numbers for floor id=%d: %v", floor.ID, err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	occupied := schedule.OccupiedIntervals(from, occupiedRangeDays, reservations, roomNumbers, uc.rules)

	return &Response{
		FloorNumber: floor.FloorNumber,
		Days:        occupied,
	}, nil
}

package get_free_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	buildingRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/building"
	"github.com/gasparllamazares/LRM-ReservationService/internal/schedule"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/ptr"
)

// maxRangeDays максимальная глубина запроса в днях, совпадает с горизонтом бронирования
const maxRangeDays = domain.HorizonDays + 1

// UseCase use case для получения свободных интервалов этажа
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

// Execute выполняет use case получения свободных интервалов
// Свободные интервалы считаются обходом занятых интервалов дня
// внутри рабочего окна, без генерации сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Debug("GetFreeSlots: floor=%d, days=%d", req.FloorID, req.Days)

	// 1. Валидация входных данных
	if req.FloorID <= 0 {
		return nil, fmt.Errorf("%w: floor_id must be positive", ErrInvalidInput)
	}
	days := req.Days
	if days == 0 {
		days = 1
	}
	if days < 1 || days > maxRangeDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, maxRangeDays)
	}

	// 2. Получаем этаж
	floor, err := uc.buildingRepo.GetFloorByID(ctx, req.FloorID)
	if err != nil {
		if errors.Is(err, buildingRepo.ErrFloorNotFound) {
			uc.logger.Warn("GetFreeSlots: floor id=%d not found", req.FloorID)
			return nil, ErrFloorNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get floor id=%d: %v", req.FloorID, err)
		return nil, fmt.Errorf("%w: failed to get floor: %v", ErrInternal, err)
	}

	// 3. Начало диапазона: полночь запрошенной даты в поясе здания
	base := uc.timeProvider.Now()
	if req.Date != nil {
		base = *req.Date
	}
	local := base.In(uc.rules.Location)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, uc.rules.Location)
	to := from.AddDate(0, 0, days)

	// 4. Загружаем брони этажа; окно слева расширено на максимальную
	// длительность, чтобы захватить брони, начавшиеся накануне закрытия
	reservations, err := uc.reservationRepo.GetByFloorWithFilter(ctx, domain.FloorReservationsFilter{
		FloorID: floor.ID,
		From:    ptr.Ptr(from.Add(-time.Duration(domain.MaxDurationMinutes) * time.Minute)),
		To:      ptr.Ptr(to),
	})
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get floor reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get floor reservations: %v", ErrInternal, err)
	}

	// 5. Считаем свободные интервалы по дням
	free := schedule.FreeIntervalsRange(from, days, reservations, uc.rules)

	return &Response{
		FloorNumber: floor.FloorNumber,
		Days:        free,
	}, nil
}

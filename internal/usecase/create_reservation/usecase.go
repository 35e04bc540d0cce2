package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	buildingRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/building"
	reservationRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/reservation"
	"github.com/gasparllamazares/LRM-ReservationService/internal/schedule"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/ptr"
)

// UseCase use case для создания брони прачечной
type UseCase struct {
	reservationRepo ReservationRepository
	buildingRepo    BuildingRepository
	txManager       TransactionManager
	rules           schedule.Rules
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	buildingRepo BuildingRepository,
	txManager TransactionManager,
	rules schedule.Rules,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		buildingRepo:    buildingRepo,
		txManager:       txManager,
		rules:           rules,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
// Проверки пересечений и квоты выполняются в сериализуемой транзакции
// с блокировкой броней этажа - две конкурентные брони на пересекающиеся
// интервалы одного этажа не могут пройти обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: individual=%d, start=%s, duration=%dm",
		req.IndividualID, req.ReservationTime.Format(domain.DateFormat+" "+domain.TimeFormat), req.DurationMinutes)

	// 1. Валидация входных данных (подставляет длительность по умолчанию)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем жильца
	individual, err := uc.buildingRepo.GetIndividualByID(ctx, req.IndividualID)
	if err != nil {
		if errors.Is(err, buildingRepo.ErrIndividualNotFound) {
			uc.logger.Warn("CreateReservation: individual id=%d not found", req.IndividualID)
			return nil, ErrIndividualNotFound
		}
		uc.logger.Error("CreateReservation: failed to get individual id=%d: %v", req.IndividualID, err)
		return nil, fmt.Errorf("%w: failed to get individual: %v", ErrInternal, err)
	}

	// 4. Жилец должен быть заселён: бронь делается на его комнату
	if !individual.HasRoom() {
		uc.logger.Warn("CreateReservation: individual id=%d has no room assigned", req.IndividualID)
		return nil, ErrNoRoomAssigned
	}

	// 5. Получаем комнату и этаж
	room, err := uc.buildingRepo.GetRoomByID(ctx, *individual.RoomID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get room id=%d: %v", *individual.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	floor, err := uc.buildingRepo.GetFloorByID(ctx, room.FloorID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get floor id=%d: %v", room.FloorID, err)
		return nil, fmt.Errorf("%w: failed to get floor: %v", ErrInternal, err)
	}

	candidate := schedule.Candidate{
		RoomID:          room.ID,
		RoomNumber:      room.RoomNumber,
		FloorID:         floor.ID,
		FloorNumber:     floor.FloorNumber,
		Start:           req.ReservationTime,
		DurationMinutes: req.DurationMinutes,
	}

	var result *domain.Reservation

	// 6. Проверка правил и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Загружаем брони этажа в окне сравнения с блокировкой (FOR UPDATE)
		from, to := comparisonWindow(candidate.Start, candidate.DurationMinutes, uc.rules)
		existing, err := uc.reservationRepo.GetByFloorWithFilter(txCtx, domain.FloorReservationsFilter{
			FloorID: floor.ID,
			From:    ptr.Ptr(from),
			To:      ptr.Ptr(to),
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get floor reservations: %v", err)
			return fmt.Errorf("%w: failed to get floor reservations: %v", ErrInternal, err)
		}

		// 6.2. Прогоняем кандидата через все правила допуска
		if violation := schedule.Evaluate(candidate, existing, now, uc.rules); violation != nil {
			uc.logger.Warn("CreateReservation: rejected by rule %s: %s", violation.Rule, violation.Message)
			return fmt.Errorf("create_reservation: %w", violation)
		}

		// 6.3. Создаем бронь со снимком этажа из комнаты
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			RoomID:          room.ID,
			IndividualID:    individual.ID,
			FloorID:         floor.ID,
			ReservationTime: req.ReservationTime,
			DurationMinutes: req.DurationMinutes,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: slot taken by concurrent booking on floor=%d", floor.FloorNumber)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s for room=%d floor=%d",
		result.ID, room.RoomNumber, floor.FloorNumber)

	return &Response{
		ID:              result.ID,
		RoomNumber:      room.RoomNumber,
		FloorNumber:     floor.FloorNumber,
		ReservationTime: result.ReservationTime,
		DurationMinutes: result.DurationMinutes,
		IndividualName:  individual.FullName(),
		CreatedAt:       result.CreatedAt,
	}, nil
}

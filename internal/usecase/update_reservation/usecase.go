package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	reservationRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/reservation"
	"github.com/gasparllamazares/LRM-ReservationService/internal/schedule"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/ptr"
)

// UseCase use case для изменения брони
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

// Execute выполняет use case изменения брони
// Менять бронь может только её владелец и только до начала;
// новый интервал проходит все те же правила, что и при создании,
// при этом сама изменяемая бронь из проверок исключается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%s, individual=%d", req.ReservationID, req.IndividualID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var updated *domain.Reservation
	var roomNumber, floorNumber int

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Получаем бронь
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 4. Проверяем владельца
		if !reservation.OwnedBy(req.IndividualID) {
			uc.logger.Warn("UpdateReservation: individual=%d is not the owner of reservation id=%s",
				req.IndividualID, req.ReservationID)
			return ErrPermissionDenied
		}

		// 5. Начавшуюся бронь менять нельзя
		if reservation.HasStarted(now) {
			uc.logger.Warn("UpdateReservation: reservation id=%s has already started", req.ReservationID)
			return ErrAlreadyStarted
		}

		// 6. Применяем изменения поверх текущих значений
		if req.ReservationTime != nil {
			reservation.ReservationTime = *req.ReservationTime
		}
		if req.DurationMinutes != nil {
			reservation.DurationMinutes = *req.DurationMinutes
		}

		room, err := uc.buildingRepo.GetRoomByID(txCtx, reservation.RoomID)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to get room id=%d: %v", reservation.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		floor, err := uc.buildingRepo.GetFloorByID(txCtx, reservation.FloorID)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to get floor id=%d: %v", reservation.FloorID, err)
			return fmt.Errorf("%w: failed to get floor: %v", ErrInternal, err)
		}

		roomNumber = room.RoomNumber
		floorNumber = floor.FloorNumber

		candidate := schedule.Candidate{
			ID:              reservation.ID,
			RoomID:          room.ID,
			RoomNumber:      room.RoomNumber,
			FloorID:         floor.ID,
			FloorNumber:     floor.FloorNumber,
			Start:           reservation.ReservationTime,
			DurationMinutes: reservation.DurationMinutes,
		}

		// 7. Загружаем брони этажа в окне сравнения, исключая изменяемую
		from, to := comparisonWindow(candidate.Start, candidate.DurationMinutes, uc.rules)
		existing, err := uc.reservationRepo.GetByFloorWithFilter(txCtx, domain.FloorReservationsFilter{
			FloorID:   floor.ID,
			From:      ptr.Ptr(from),
			To:        ptr.Ptr(to),
			ExcludeID: ptr.Ptr(reservation.ID),
		})
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to get floor reservations: %v", err)
			return fmt.Errorf("%w: failed to get floor reservations: %v", ErrInternal, err)
		}

		// 8. Прогоняем новый интервал через все правила допуска
		if violation := schedule.Evaluate(candidate, existing, now, uc.rules); violation != nil {
			uc.logger.Warn("UpdateReservation: rejected by rule %s: %s", violation.Rule, violation.Message)
			return fmt.Errorf("update_reservation: %w", violation)
		}

		// 9. Сохраняем изменения
		if err := uc.reservationRepo.Update(txCtx, reservation); err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("UpdateReservation: slot taken by concurrent booking on floor=%d", floorNumber)
				return ErrSlotTaken
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		updated = reservation
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%s", updated.ID)

	return &Response{
		ID:              updated.ID,
		RoomNumber:      roomNumber,
		FloorNumber:     floorNumber,
		ReservationTime: updated.ReservationTime,
		DurationMinutes: updated.DurationMinutes,
		CreatedAt:       updated.CreatedAt,
	}, nil
}

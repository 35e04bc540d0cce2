package delete_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	buildingRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/building"
	reservationRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/reservation"
)

// UseCase use case для отмены брони
type UseCase struct {
	reservationRepo ReservationRepository
	buildingRepo    BuildingRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	buildingRepo BuildingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		buildingRepo:    buildingRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case отмены брони
// Владелец отменяет только не начавшиеся брони; персонал и
// администратор этажа могут снять любую бронь своего этажа,
// в том числе уже идущую
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeleteReservation: id=%s, individual=%d", req.ReservationID, req.IndividualID)

	// 1. Валидация входных данных
	if req.ReservationID == uuid.Nil {
		return nil, fmt.Errorf("%w: reservation_id is required", ErrInvalidInput)
	}
	if req.IndividualID <= 0 {
		return nil, fmt.Errorf("%w: individual_id must be positive", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 3. Получаем бронь
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("DeleteReservation: reservation id=%s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("DeleteReservation: failed to get reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if reservation.OwnedBy(req.IndividualID) {
			// 4а. Владелец: отмена возможна только до начала
			if reservation.HasStarted(now) {
				uc.logger.Warn("DeleteReservation: reservation id=%s has already started", req.ReservationID)
				return ErrAlreadyStarted
			}
		} else {
			// 4б. Не владелец: нужны права администратора этажа брони
			individual, err := uc.buildingRepo.GetIndividualByID(txCtx, req.IndividualID)
			if err != nil {
				if errors.Is(err, buildingRepo.ErrIndividualNotFound) {
					return ErrPermissionDenied
				}
				uc.logger.Error("DeleteReservation: failed to get individual id=%d: %v", req.IndividualID, err)
				return fmt.Errorf("%w: failed to get individual: %v", ErrInternal, err)
			}

			floor, err := uc.buildingRepo.GetFloorByID(txCtx, reservation.FloorID)
			if err != nil {
				uc.logger.Error("DeleteReservation: failed to get floor id=%d: %v", reservation.FloorID, err)
				return fmt.Errorf("%w: failed to get floor: %v", ErrInternal, err)
			}

			if !individual.CanAdministerFloor(floor.FloorNumber) {
				uc.logger.Warn("DeleteReservation: individual=%d has no rights over floor=%d",
					req.IndividualID, floor.FloorNumber)
				return ErrPermissionDenied
			}
		}

		// 5. Удаляем бронь
		if err := uc.reservationRepo.Delete(txCtx, reservation.ID); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("DeleteReservation: failed to delete reservation id=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to delete reservation: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DeleteReservation: successfully deleted reservation id=%s", req.ReservationID)

	return &Response{ID: req.ReservationID, Deleted: true}, nil
}

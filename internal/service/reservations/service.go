package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	buildingRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/building"
	reservationRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/reservation"
	"github.com/gasparllamazares/LRM-ReservationService/internal/schedule"
	"github.com/gasparllamazares/LRM-ReservationService/internal/service/reservations/models"
)

// Service сервис для чтения броней
type Service struct {
	reservationRepo ReservationRepository
	buildingRepo    BuildingRepository
	rules           schedule.Rules
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	buildingRepo BuildingRepository,
	rules schedule.Rules,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		buildingRepo:    buildingRepo,
		rules:           rules,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
// Проверяет права доступа - жилец видит только свою бронь,
// персонал и администратор этажа видят брони своего этажа
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, individualID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for individual=%d", id, individualID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkReservationAccess(ctx, reservation, individualID); err != nil {
		s.logger.Warn("GetByID: access denied for individual=%d to reservation id=%s", individualID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%s", id)
	return models.FromDomainReservation(reservation, s.rules.Location), nil
}

// GetIndividualReservations получает брони жильца, новые первыми
func (s *Service) GetIndividualReservations(ctx context.Context, individualID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("GetIndividualReservations: fetching reservations for individual=%d", individualID)

	if individualID <= 0 {
		return nil, fmt.Errorf("%w: individual id must be positive", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByIndividual(ctx, individualID)
	if err != nil {
		s.logger.Error("GetIndividualReservations: repository error for individual=%d: %v", individualID, err)
		return nil, fmt.Errorf("%w: GetIndividualReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetIndividualReservations: successfully fetched %d reservations for individual=%d",
		len(reservations), individualID)
	return models.FromDomainReservationList(reservations, nil, s.rules.Location), nil
}

// GetFloorReservations получает брони этажа за период
// Расписание этажа открыто для любого жильца здания
func (s *Service) GetFloorReservations(ctx context.Context, req *models.GetFloorReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetFloorReservations: fetching reservations for floor=%d", req.FloorID)

	floor, err := s.buildingRepo.GetFloorByID(ctx, req.FloorID)
	if err != nil {
		if errors.Is(err, buildingRepo.ErrFloorNotFound) {
			s.logger.Warn("GetFloorReservations: floor id=%d not found", req.FloorID)
			return nil, ErrFloorNotFound
		}
		s.logger.Error("GetFloorReservations: failed to get floor id=%d: %v", req.FloorID, err)
		return nil, fmt.Errorf("%w: GetFloorReservations - failed to get floor: %v", ErrInternal, err)
	}

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("GetFloorReservations: invalid period for floor=%d", req.FloorID)
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByFloorWithFilter(ctx, domain.FloorReservationsFilter{
		FloorID: floor.ID,
		From:    req.From,
		To:      req.To,
	})
	if err != nil {
		s.logger.Error("GetFloorReservations: repository error for floor=%d: %v", req.FloorID, err)
		return nil, fmt.Errorf("%w: GetFloorReservations - repository error: %v", ErrInternal, err)
	}

	roomNumbers, err := s.buildingRepo.RoomNumbersByFloor(ctx, floor.ID)
	if err != nil {
		s.logger.Error("GetFloorReservations: failed to get room numbers for floor=%d: %v", req.FloorID, err)
		return nil, fmt.Errorf("%w: GetFloorReservations - failed to get rooms: %v", ErrInternal, err)
	}

	s.logger.Info("GetFloorReservations: successfully fetched %d reservations for floor=%d",
		len(reservations), req.FloorID)
	return models.FromDomainReservationList(reservations, roomNumbers, s.rules.Location), nil
}

// Вспомогательные методы

// checkReservationAccess проверяет, что жилец имеет доступ к брони
// Доступ есть у владельца, у персонала и у администратора этажа брони
func (s *Service) checkReservationAccess(ctx context.Context, reservation *domain.Reservation, individualID int64) error {
	if reservation.OwnedBy(individualID) {
		return nil
	}

	individual, err := s.buildingRepo.GetIndividualByID(ctx, individualID)
	if err != nil {
		if errors.Is(err, buildingRepo.ErrIndividualNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkReservationAccess: failed to get individual id=%d: %v", individualID, err)
		return fmt.Errorf("%w: checkReservationAccess - failed to get individual: %v", ErrInternal, err)
	}

	floor, err := s.buildingRepo.GetFloorByID(ctx, reservation.FloorID)
	if err != nil {
		s.logger.Error("checkReservationAccess: failed to get floor id=%d: %v", reservation.FloorID, err)
		return fmt.Errorf("%w: checkReservationAccess - failed to get floor: %v", ErrInternal, err)
	}

	if !individual.CanAdministerFloor(floor.FloorNumber) {
		return ErrAccessDenied
	}

	return nil
}

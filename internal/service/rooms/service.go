package rooms

import (
	"context"
	"errors"
	"fmt"

	buildingRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/building"
	"github.com/gasparllamazares/LRM-ReservationService/internal/service/rooms/models"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/ptr"
)

// Service сервис для работы с комнатами и заселением
type Service struct {
	buildingRepo BuildingRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	buildingRepo BuildingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		buildingRepo: buildingRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetRoom получает комнату по номеру вместе с жильцами
func (s *Service) GetRoom(ctx context.Context, roomNumber int) (*models.RoomResponse, error) {
	s.logger.Info("GetRoom: fetching room number=%d", roomNumber)

	room, err := s.buildingRepo.GetRoomByNumber(ctx, roomNumber)
	if err != nil {
		if errors.Is(err, buildingRepo.ErrRoomNotFound) {
			s.logger.Warn("GetRoom: room number=%d not found", roomNumber)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoom: repository error for room number=%d: %v", roomNumber, err)
		return nil, fmt.Errorf("%w: GetRoom - repository error: %v", ErrInternal, err)
	}

	occupants, err := s.buildingRepo.GetIndividualsByRoom(ctx, room.ID)
	if err != nil {
		s.logger.Error("GetRoom: failed to get occupants for room id=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: GetRoom - failed to get occupants: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room, occupants), nil
}

// AssignIndividual заселяет жильца в комнату
// Заселение доступно только персоналу. Проверка вместимости и запись
// выполняются в сериализуемой транзакции, чтобы два конкурентных
// заселения не переполнили комнату
func (s *Service) AssignIndividual(ctx context.Context, actorID int64, req *models.AssignRequest) (*models.RoomResponse, error) {
	s.logger.Info("AssignIndividual: actor=%d assigning individual=%d to room number=%d",
		actorID, req.IndividualID, req.RoomNumber)

	if req.IndividualID <= 0 {
		return nil, fmt.Errorf("%w: individual id must be positive", ErrInvalidInput)
	}

	if err := s.checkStaffAccess(ctx, actorID); err != nil {
		return nil, err
	}

	var resp *models.RoomResponse

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		individual, err := s.buildingRepo.GetIndividualByID(txCtx, req.IndividualID)
		if err != nil {
			if errors.Is(err, buildingRepo.ErrIndividualNotFound) {
				s.logger.Warn("AssignIndividual: individual id=%d not found", req.IndividualID)
				return ErrIndividualNotFound
			}
			s.logger.Error("AssignIndividual: failed to get individual id=%d: %v", req.IndividualID, err)
			return fmt.Errorf("%w: AssignIndividual - failed to get individual: %v", ErrInternal, err)
		}

		room, err := s.buildingRepo.GetRoomByNumber(txCtx, req.RoomNumber)
		if err != nil {
			if errors.Is(err, buildingRepo.ErrRoomNotFound) {
				s.logger.Warn("AssignIndividual: room number=%d not found", req.RoomNumber)
				return ErrRoomNotFound
			}
			s.logger.Error("AssignIndividual: failed to get room number=%d: %v", req.RoomNumber, err)
			return fmt.Errorf("%w: AssignIndividual - failed to get room: %v", ErrInternal, err)
		}

		floor, err := s.buildingRepo.GetFloorByID(txCtx, room.FloorID)
		if err != nil {
			s.logger.Error("AssignIndividual: failed to get floor id=%d: %v", room.FloorID, err)
			return fmt.Errorf("%w: AssignIndividual - failed to get floor: %v", ErrInternal, err)
		}

		// Номер комнаты обязан начинаться с номера этажа, в несогласованную комнату не заселяем
		if !room.MatchesFloorNumber(floor.FloorNumber) {
			s.logger.Warn("AssignIndividual: room number=%d is inconsistent with floor number=%d",
				room.RoomNumber, floor.FloorNumber)
			return ErrRoomFloorMismatch
		}

		// Повторное заселение в ту же комнату - no-op
		if individual.OccupiesRoom(room.ID) {
			occupants, err := s.buildingRepo.GetIndividualsByRoom(txCtx, room.ID)
			if err != nil {
				return fmt.Errorf("%w: AssignIndividual - failed to get occupants: %v", ErrInternal, err)
			}
			resp = models.FromDomainRoom(room, occupants)
			return nil
		}

		count, err := s.buildingRepo.CountRoomOccupants(txCtx, room.ID)
		if err != nil {
			s.logger.Error("AssignIndividual: failed to count occupants for room id=%d: %v", room.ID, err)
			return fmt.Errorf("%w: AssignIndividual - failed to count occupants: %v", ErrInternal, err)
		}

		if !room.CanAccommodate(count) {
			s.logger.Warn("AssignIndividual: room number=%d is full (%d/%d)", req.RoomNumber, count, room.MaxOccupants)
			return ErrRoomFull
		}

		if err := s.buildingRepo.SetIndividualRoom(txCtx, individual.ID, ptr.Ptr(room.ID)); err != nil {
			s.logger.Error("AssignIndividual: failed to set room for individual id=%d: %v", individual.ID, err)
			return fmt.Errorf("%w: AssignIndividual - failed to set room: %v", ErrInternal, err)
		}

		occupants, err := s.buildingRepo.GetIndividualsByRoom(txCtx, room.ID)
		if err != nil {
			return fmt.Errorf("%w: AssignIndividual - failed to get occupants: %v", ErrInternal, err)
		}

		resp = models.FromDomainRoom(room, occupants)
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("AssignIndividual: successfully assigned individual=%d to room number=%d",
		req.IndividualID, req.RoomNumber)
	return resp, nil
}

// UnassignIndividual выселяет жильца из его комнаты
// Выселение доступно только персоналу. Брони при выселении не
// удаляются: новые создать нельзя, пока жилец не заселён снова
func (s *Service) UnassignIndividual(ctx context.Context, actorID int64, individualID int64) error {
	s.logger.Info("UnassignIndividual: actor=%d unassigning individual=%d", actorID, individualID)

	if individualID <= 0 {
		return fmt.Errorf("%w: individual id must be positive", ErrInvalidInput)
	}

	if err := s.checkStaffAccess(ctx, actorID); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		individual, err := s.buildingRepo.GetIndividualByID(txCtx, individualID)
		if err != nil {
			if errors.Is(err, buildingRepo.ErrIndividualNotFound) {
				s.logger.Warn("UnassignIndividual: individual id=%d not found", individualID)
				return ErrIndividualNotFound
			}
			s.logger.Error("UnassignIndividual: failed to get individual id=%d: %v", individualID, err)
			return fmt.Errorf("%w: UnassignIndividual - failed to get individual: %v", ErrInternal, err)
		}

		if !individual.HasRoom() {
			s.logger.Warn("UnassignIndividual: individual id=%d has no room", individualID)
			return ErrNotAssigned
		}

		if err := s.buildingRepo.SetIndividualRoom(txCtx, individual.ID, nil); err != nil {
			s.logger.Error("UnassignIndividual: failed to clear room for individual id=%d: %v", individualID, err)
			return fmt.Errorf("%w: UnassignIndividual - failed to clear room: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("UnassignIndividual: successfully unassigned individual=%d", individualID)
	return nil
}

// Вспомогательные методы

// checkStaffAccess проверяет, что действие выполняет персонал
func (s *Service) checkStaffAccess(ctx context.Context, actorID int64) error {
	actor, err := s.buildingRepo.GetIndividualByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, buildingRepo.ErrIndividualNotFound) {
			s.logger.Warn("checkStaffAccess: actor id=%d not found", actorID)
			return ErrAccessDenied
		}
		s.logger.Error("checkStaffAccess: failed to get actor id=%d: %v", actorID, err)
		return fmt.Errorf("%w: checkStaffAccess - failed to get actor: %v", ErrInternal, err)
	}

	if !actor.IsStaff {
		s.logger.Warn("checkStaffAccess: actor id=%d is not staff", actorID)
		return ErrAccessDenied
	}

	return nil
}

// GetFloorSummary возвращает административную сводку по этажу
func (s *Service) GetFloorSummary(ctx context.Context, floorID int64) (*models.FloorSummaryResponse, error) {
	s.logger.Info("GetFloorSummary: fetching summary for floor=%d", floorID)

	summary, err := s.buildingRepo.GetFloorSummary(ctx, floorID)
	if err != nil {
		if errors.Is(err, buildingRepo.ErrFloorNotFound) {
			s.logger.Warn("GetFloorSummary: floor id=%d not found", floorID)
			return nil, ErrFloorNotFound
		}
		s.logger.Error("GetFloorSummary: repository error for floor=%d: %v", floorID, err)
		return nil, fmt.Errorf("%w: GetFloorSummary - repository error: %v", ErrInternal, err)
	}

	return models.FromFloorSummary(summary), nil
}

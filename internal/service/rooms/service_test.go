package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	buildingRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/building"
	"github.com/gasparllamazares/LRM-ReservationService/internal/service/rooms/models"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/ptr"
)

type fakeBuildingRepo struct {
	individuals map[int64]*domain.Individual
	rooms       map[int]*domain.Room
	assigned    map[int64]*int64
}

func newFakeBuildingRepo() *fakeBuildingRepo {
	return &fakeBuildingRepo{
		individuals: make(map[int64]*domain.Individual),
		rooms:       make(map[int]*domain.Room),
		assigned:    make(map[int64]*int64),
	}
}

func (f *fakeBuildingRepo) GetFloorByID(_ context.Context, id int64) (*domain.Floor, error) {
	return &domain.Floor{ID: id, FloorNumber: int(id)}, nil
}

func (f *fakeBuildingRepo) GetRoomByID(_ context.Context, id int64) (*domain.Room, error) {
	for _, room := range f.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, buildingRepo.ErrRoomNotFound
}

func (f *fakeBuildingRepo) GetRoomByNumber(_ context.Context, roomNumber int) (*domain.Room, error) {
	room, ok := f.rooms[roomNumber]
	if !ok {
		return nil, buildingRepo.ErrRoomNotFound
	}
	return room, nil
}

func (f *fakeBuildingRepo) GetIndividualByID(_ context.Context, id int64) (*domain.Individual, error) {
	ind, ok := f.individuals[id]
	if !ok {
		return nil, buildingRepo.ErrIndividualNotFound
	}
	return ind, nil
}

func (f *fakeBuildingRepo) GetIndividualsByRoom(_ context.Context, roomID int64) ([]*domain.Individual, error) {
	var occupants []*domain.Individual
	for _, ind := range f.individuals {
		if ind.RoomID != nil && *ind.RoomID == roomID {
			occupants = append(occupants, ind)
		}
	}
	return occupants, nil
}

func (f *fakeBuildingRepo) CountRoomOccupants(_ context.Context, roomID int64) (int, error) {
	count := 0
	for _, ind := range f.individuals {
		if ind.RoomID != nil && *ind.RoomID == roomID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBuildingRepo) SetIndividualRoom(_ context.Context, individualID int64, roomID *int64) error {
	f.assigned[individualID] = roomID
	if ind, ok := f.individuals[individualID]; ok {
		ind.RoomID = roomID
	}
	return nil
}

func (f *fakeBuildingRepo) GetFloorSummary(_ context.Context, floorID int64) (*buildingRepo.FloorSummary, error) {
	if floorID != 3 {
		return nil, buildingRepo.ErrFloorNotFound
	}
	return &buildingRepo.FloorSummary{
		FloorNumber:      3,
		TotalRooms:       12,
		OccupiedRooms:    9,
		TotalIndividuals: 17,
	}, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSetup(t *testing.T) (*Service, *fakeBuildingRepo) {
	t.Helper()

	repo := newFakeBuildingRepo()
	repo.rooms[302] = &domain.Room{ID: 10, FloorID: 3, RoomNumber: 302, MaxOccupants: 2}
	repo.individuals[1] = &domain.Individual{ID: 1, AccountID: "acc-staff", FirstName: "Ана", LastName: "Петреску", IsStaff: true}
	repo.individuals[42] = &domain.Individual{ID: 42, AccountID: "acc-42", FirstName: "Ион", LastName: "Попеску"}

	return NewService(repo, &fakeTxManager{}, nopLogger{}), repo
}

func TestAssignIndividual_Success(t *testing.T) {
	svc, repo := testSetup(t)

	resp, err := svc.AssignIndividual(context.Background(), 1, &models.AssignRequest{
		IndividualID: 42,
		RoomNumber:   302,
	})

	require.NoError(t, err)
	assert.Equal(t, 302, resp.RoomNumber)
	require.Len(t, resp.Occupants, 1)
	assert.Equal(t, "Ион Попеску", resp.Occupants[0].FullName)

	require.Contains(t, repo.assigned, int64(42))
	require.NotNil(t, repo.assigned[42])
	assert.Equal(t, int64(10), *repo.assigned[42])
}

func TestAssignIndividual_NotStaff(t *testing.T) {
	svc, repo := testSetup(t)
	repo.individuals[43] = &domain.Individual{ID: 43, AccountID: "acc-43", FirstName: "Мария", LastName: "Ионеску"}

	_, err := svc.AssignIndividual(context.Background(), 43, &models.AssignRequest{
		IndividualID: 42,
		RoomNumber:   302,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.NotContains(t, repo.assigned, int64(42))
}

func TestAssignIndividual_UnknownActor(t *testing.T) {
	svc, _ := testSetup(t)

	_, err := svc.AssignIndividual(context.Background(), 999, &models.AssignRequest{
		IndividualID: 42,
		RoomNumber:   302,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAssignIndividual_RoomFull(t *testing.T) {
	svc, repo := testSetup(t)
	repo.individuals[50] = &domain.Individual{ID: 50, AccountID: "acc-50", FirstName: "A", LastName: "B", RoomID: ptr.Ptr(int64(10))}
	repo.individuals[51] = &domain.Individual{ID: 51, AccountID: "acc-51", FirstName: "C", LastName: "D", RoomID: ptr.Ptr(int64(10))}

	_, err := svc.AssignIndividual(context.Background(), 1, &models.AssignRequest{
		IndividualID: 42,
		RoomNumber:   302,
	})

	assert.ErrorIs(t, err, ErrRoomFull)
}

func TestAssignIndividual_RoomFloorMismatch(t *testing.T) {
	svc, repo := testSetup(t)
	// Комната с номером 401 числится на этаже 2
	repo.rooms[401] = &domain.Room{ID: 20, FloorID: 2, RoomNumber: 401, MaxOccupants: 2}

	_, err := svc.AssignIndividual(context.Background(), 1, &models.AssignRequest{
		IndividualID: 42,
		RoomNumber:   401,
	})

	assert.ErrorIs(t, err, ErrRoomFloorMismatch)
	assert.NotContains(t, repo.assigned, int64(42))
}

func TestAssignIndividual_SameRoomIsNoop(t *testing.T) {
	svc, repo := testSetup(t)
	repo.individuals[42].RoomID = ptr.Ptr(int64(10))

	resp, err := svc.AssignIndividual(context.Background(), 1, &models.AssignRequest{
		IndividualID: 42,
		RoomNumber:   302,
	})

	require.NoError(t, err)
	assert.Equal(t, 302, resp.RoomNumber)
	// Повторное заселение не пишет в хранилище
	assert.NotContains(t, repo.assigned, int64(42))
}

func TestAssignIndividual_IndividualNotFound(t *testing.T) {
	svc, _ := testSetup(t)

	_, err := svc.AssignIndividual(context.Background(), 1, &models.AssignRequest{
		IndividualID: 777,
		RoomNumber:   302,
	})

	assert.ErrorIs(t, err, ErrIndividualNotFound)
}

func TestAssignIndividual_RoomNotFound(t *testing.T) {
	svc, _ := testSetup(t)

	_, err := svc.AssignIndividual(context.Background(), 1, &models.AssignRequest{
		IndividualID: 42,
		RoomNumber:   999,
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUnassignIndividual(t *testing.T) {
	svc, repo := testSetup(t)
	repo.individuals[42].RoomID = ptr.Ptr(int64(10))

	require.NoError(t, svc.UnassignIndividual(context.Background(), 1, 42))

	require.Contains(t, repo.assigned, int64(42))
	assert.Nil(t, repo.assigned[42])
}

func TestUnassignIndividual_NotAssigned(t *testing.T) {
	svc, _ := testSetup(t)

	err := svc.UnassignIndividual(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestUnassignIndividual_NotStaff(t *testing.T) {
	svc, repo := testSetup(t)
	repo.individuals[42].RoomID = ptr.Ptr(int64(10))

	err := svc.UnassignIndividual(context.Background(), 42, 42)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetRoom(t *testing.T) {
	svc, repo := testSetup(t)
	repo.individuals[42].RoomID = ptr.Ptr(int64(10))

	resp, err := svc.GetRoom(context.Background(), 302)
	require.NoError(t, err)
	assert.Equal(t, 302, resp.RoomNumber)
	assert.Equal(t, 2, resp.MaxOccupants)
	require.Len(t, resp.Occupants, 1)

	_, err = svc.GetRoom(context.Background(), 999)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGetFloorSummary(t *testing.T) {
	svc, _ := testSetup(t)

	resp, err := svc.GetFloorSummary(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.FloorNumber)
	assert.Equal(t, 12, resp.TotalRooms)
	assert.Equal(t, 9, resp.OccupiedRooms)
	assert.Equal(t, 17, resp.TotalIndividuals)

	_, err = svc.GetFloorSummary(context.Background(), 4)
	assert.ErrorIs(t, err, ErrFloorNotFound)
}

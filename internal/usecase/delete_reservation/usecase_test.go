package delete_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	buildingRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/building"
	reservationRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/reservation"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/ptr"
)

type fakeReservationRepo struct {
	reservation *domain.Reservation
	deleted     *uuid.UUID
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	if f.reservation == nil || f.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.reservation, nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.deleted = &id
	return nil
}

type fakeBuildingRepo struct {
	individuals map[int64]*domain.Individual
	floor       *domain.Floor
}

func (f *fakeBuildingRepo) GetIndividualByID(_ context.Context, id int64) (*domain.Individual, error) {
	individual, ok := f.individuals[id]
	if !ok {
		return nil, buildingRepo.ErrIndividualNotFound
	}
	return individual, nil
}

func (f *fakeBuildingRepo) GetFloorByID(_ context.Context, _ int64) (*domain.Floor, error) {
	return f.floor, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (p *fixedTime) Now() time.Time { return p.t }

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSetup(t *testing.T) (*UseCase, *fakeReservationRepo, *fakeBuildingRepo, *fixedTime) {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Bucharest")
	require.NoError(t, err)

	now := &fixedTime{t: time.Date(2025, 10, 14, 12, 0, 0, 0, loc)}

	resRepo := &fakeReservationRepo{
		reservation: &domain.Reservation{
			ID:           uuid.New(),
			RoomID:       10,
			IndividualID: 7,
			FloorID:      3,
			// Начало через два часа после now
			ReservationTime: time.Date(2025, 10, 14, 14, 0, 0, 0, loc),
			DurationMinutes: 40,
		},
	}
	bldRepo := &fakeBuildingRepo{
		individuals: map[int64]*domain.Individual{
			7: {ID: 7, FirstName: "Ana", LastName: "Pop"},
		},
		floor: &domain.Floor{ID: 3, FloorNumber: 3},
	}

	uc := NewUseCase(resRepo, bldRepo, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = now

	return uc, resRepo, bldRepo, now
}

func TestExecute_OwnerDeletesUpcoming(t *testing.T) {
	uc, resRepo, _, _ := testSetup(t)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: resRepo.reservation.ID,
		IndividualID:  7,
	})

	require.NoError(t, err)
	assert.True(t, resp.Deleted)
	require.NotNil(t, resRepo.deleted)
	assert.Equal(t, resRepo.reservation.ID, *resRepo.deleted)
}

func TestExecute_OwnerCannotDeleteStarted(t *testing.T) {
	uc, resRepo, _, now := testSetup(t)
	resRepo.reservation.ReservationTime = now.t.Add(-10 * time.Minute)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: resRepo.reservation.ID,
		IndividualID:  7,
	})

	assert.ErrorIs(t, err, ErrAlreadyStarted)
	assert.Nil(t, resRepo.deleted)
}

func TestExecute_StaffOverride(t *testing.T) {
	uc, resRepo, bldRepo, now := testSetup(t)

	// Персонал снимает чужую идущую бронь
	resRepo.reservation.ReservationTime = now.t.Add(-10 * time.Minute)
	bldRepo.individuals[100] = &domain.Individual{ID: 100, IsStaff: true}

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: resRepo.reservation.ID,
		IndividualID:  100,
	})

	require.NoError(t, err)
	assert.True(t, resp.Deleted)
}

func TestExecute_FloorAdminOverride(t *testing.T) {
	uc, resRepo, bldRepo, _ := testSetup(t)

	// Администратор этажа 3 может снять бронь своего этажа
	bldRepo.individuals[200] = &domain.Individual{ID: 200, AdminFloor: ptr.Ptr(int64(3))}

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: resRepo.reservation.ID,
		IndividualID:  200,
	})

	require.NoError(t, err)
	assert.True(t, resp.Deleted)
}

func TestExecute_WrongFloorAdminDenied(t *testing.T) {
	uc, resRepo, bldRepo, _ := testSetup(t)

	// Администратор другого этажа прав не имеет
	bldRepo.individuals[200] = &domain.Individual{ID: 200, AdminFloor: ptr.Ptr(int64(5))}

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: resRepo.reservation.ID,
		IndividualID:  200,
	})

	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Nil(t, resRepo.deleted)
}

func TestExecute_StrangerDenied(t *testing.T) {
	uc, resRepo, bldRepo, _ := testSetup(t)
	bldRepo.individuals[300] = &domain.Individual{ID: 300}

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: resRepo.reservation.ID,
		IndividualID:  300,
	})

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestExecute_NotFound(t *testing.T) {
	uc, _, _, _ := testSetup(t)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: uuid.New(),
		IndividualID:  7,
	})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

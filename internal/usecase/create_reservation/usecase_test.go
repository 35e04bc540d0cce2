package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	buildingRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/building"
	reservationRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/reservation"
	"github.com/gasparllamazares/LRM-ReservationService/internal/schedule"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/ptr"
)

type fakeReservationRepo struct {
	existing  []*domain.Reservation
	created   *domain.Reservation
	createErr error
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	f.created = r
	return r, nil
}

func (f *fakeReservationRepo) GetByFloorWithFilter(_ context.Context, _ domain.FloorReservationsFilter) ([]*domain.Reservation, error) {
	return f.existing, nil
}

type fakeBuildingRepo struct {
	individual *domain.Individual
	room       *domain.Room
	floor      *domain.Floor
}

func (f *fakeBuildingRepo) GetIndividualByID(_ context.Context, _ int64) (*domain.Individual, error) {
	if f.individual == nil {
		return nil, buildingRepo.ErrIndividualNotFound
	}
	return f.individual, nil
}

func (f *fakeBuildingRepo) GetRoomByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, nil
}

func (f *fakeBuildingRepo) GetFloorByID(_ context.Context, _ int64) (*domain.Floor, error) {
	return f.floor, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (p *fixedTime) Now() time.Time { return p.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSetup(t *testing.T) (*UseCase, *fakeReservationRepo, *fakeBuildingRepo, schedule.Rules) {
	t.Helper()

	rules, err := schedule.NewRules("Europe/Bucharest", "06:00", "23:00")
	require.NoError(t, err)

	resRepo := &fakeReservationRepo{}
	bldRepo := &fakeBuildingRepo{
		individual: &domain.Individual{ID: 7, FirstName: "Ana", LastName: "Pop", RoomID: ptr.Ptr(int64(10))},
		room:       &domain.Room{ID: 10, FloorID: 3, RoomNumber: 302, MaxOccupants: 2},
		floor:      &domain.Floor{ID: 3, FloorNumber: 3},
	}

	uc := NewUseCase(resRepo, bldRepo, &fakeTxManager{}, rules, nopLogger{})
	// Понедельник 2025-10-13 07:00 по времени здания
	uc.timeProvider = &fixedTime{t: time.Date(2025, 10, 13, 7, 0, 0, 0, rules.Location)}

	return uc, resRepo, bldRepo, rules
}

func TestExecute_Success(t *testing.T) {
	uc, resRepo, _, rules := testSetup(t)

	start := time.Date(2025, 10, 14, 10, 0, 0, 0, rules.Location)
	resp, err := uc.Execute(context.Background(), &Request{
		IndividualID:    7,
		ReservationTime: start,
		DurationMinutes: 80,
	})

	require.NoError(t, err)
	assert.Equal(t, 302, resp.RoomNumber)
	assert.Equal(t, 3, resp.FloorNumber)
	assert.Equal(t, 80, resp.DurationMinutes)
	assert.Equal(t, "Ana Pop", resp.IndividualName)
	assert.NotEqual(t, uuid.Nil, resp.ID)

	// В хранилище ушёл снимок этажа комнаты
	require.NotNil(t, resRepo.created)
	assert.Equal(t, int64(3), resRepo.created.FloorID)
	assert.Equal(t, int64(10), resRepo.created.RoomID)
	assert.Equal(t, int64(7), resRepo.created.IndividualID)
}

func TestExecute_DefaultDuration(t *testing.T) {
	uc, resRepo, _, rules := testSetup(t)

	start := time.Date(2025, 10, 14, 10, 0, 0, 0, rules.Location)
	resp, err := uc.Execute(context.Background(), &Request{
		IndividualID:    7,
		ReservationTime: start,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, domain.DefaultDurationMinutes, resRepo.created.DurationMinutes)
}

func TestExecute_IndividualNotFound(t *testing.T) {
	uc, _, bldRepo, rules := testSetup(t)
	bldRepo.individual = nil

	_, err := uc.Execute(context.Background(), &Request{
		IndividualID:    7,
		ReservationTime: time.Date(2025, 10, 14, 10, 0, 0, 0, rules.Location),
	})

	assert.ErrorIs(t, err, ErrIndividualNotFound)
}

func TestExecute_NoRoomAssigned(t *testing.T) {
	uc, _, bldRepo, rules := testSetup(t)
	bldRepo.individual.RoomID = nil

	_, err := uc.Execute(context.Background(), &Request{
		IndividualID:    7,
		ReservationTime: time.Date(2025, 10, 14, 10, 0, 0, 0, rules.Location),
	})

	assert.ErrorIs(t, err, ErrNoRoomAssigned)
}

func TestExecute_RuleViolation(t *testing.T) {
	uc, resRepo, _, rules := testSetup(t)

	// Чужая комната этажа держит пересекающийся интервал
	resRepo.existing = []*domain.Reservation{
		{
			ID:              uuid.New(),
			RoomID:          99,
			FloorID:         3,
			ReservationTime: time.Date(2025, 10, 14, 10, 0, 0, 0, rules.Location),
			DurationMinutes: 240,
		},
	}

	_, err := uc.Execute(context.Background(), &Request{
		IndividualID:    7,
		ReservationTime: time.Date(2025, 10, 14, 11, 0, 0, 0, rules.Location),
		DurationMinutes: 40,
	})

	var violation *schedule.Violation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, schedule.RuleFloorOverlap, violation.Rule)
	assert.Nil(t, resRepo.created)
}

func TestExecute_SlotTakenByConcurrentInsert(t *testing.T) {
	uc, resRepo, _, rules := testSetup(t)
	resRepo.createErr = reservationRepo.ErrSlotTaken

	_, err := uc.Execute(context.Background(), &Request{
		IndividualID:    7,
		ReservationTime: time.Date(2025, 10, 14, 10, 0, 0, 0, rules.Location),
		DurationMinutes: 40,
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _, _, _ := testSetup(t)

	testCases := []struct {
		name string
		req  *Request
	}{
		{name: "zero individual id", req: &Request{ReservationTime: time.Now().Add(time.Hour)}},
		{name: "zero reservation time", req: &Request{IndividualID: 7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ViolationIsNotSlotTaken(t *testing.T) {
	uc, resRepo, _, rules := testSetup(t)

	resRepo.existing = []*domain.Reservation{
		{
			ID:              uuid.New(),
			RoomID:          10,
			FloorID:         3,
			ReservationTime: time.Date(2025, 10, 14, 6, 0, 0, 0, rules.Location),
			DurationMinutes: 240,
		},
	}

	// Квота комнаты исчерпана - но это отказ правила, а не конфликт вставки
	_, err := uc.Execute(context.Background(), &Request{
		IndividualID:    7,
		ReservationTime: time.Date(2025, 10, 14, 12, 0, 0, 0, rules.Location),
		DurationMinutes: 40,
	})

	var violation *schedule.Violation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, schedule.RuleWeeklyQuota, violation.Rule)
	assert.False(t, errors.Is(err, ErrSlotTaken))
}

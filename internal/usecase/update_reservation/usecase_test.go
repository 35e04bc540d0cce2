package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	reservationRepo "github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/reservation"
	"github.com/gasparllamazares/LRM-ReservationService/internal/schedule"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/ptr"
)

type fakeReservationRepo struct {
	reservation *domain.Reservation
	existing    []*domain.Reservation
	updated     *domain.Reservation
	updateErr   error
	lastFilter  domain.FloorReservationsFilter
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	if f.reservation == nil || f.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *f.reservation
	return &copied, nil
}

func (f *fakeReservationRepo) GetByFloorWithFilter(_ context.Context, filter domain.FloorReservationsFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.existing, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, reservation *domain.Reservation) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = reservation
	return nil
}

type fakeBuildingRepo struct {
	room  *domain.Room
	floor *domain.Floor
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

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSetup(t *testing.T) (*UseCase, *fakeReservationRepo, schedule.Rules) {
	t.Helper()

	rules, err := schedule.NewRules("Europe/Bucharest", "06:00", "23:00")
	require.NoError(t, err)

	repo := &fakeReservationRepo{}
	building := &fakeBuildingRepo{
		room:  &domain.Room{ID: 10, RoomNumber: 302, FloorID: 3, MaxOccupants: 2},
		floor: &domain.Floor{ID: 3, FloorNumber: 3},
	}

	uc := NewUseCase(repo, building, &fakeTxManager{}, rules, nopLogger{})
	// Понедельник 2025-10-13, 07:00 по времени здания
	uc.timeProvider = &fixedTime{now: time.Date(2025, 10, 13, 7, 0, 0, 0, rules.Location)}

	return uc, repo, rules
}

func upcomingReservation(rules schedule.Rules) *domain.Reservation {
	return &domain.Reservation{
		ID:              uuid.New(),
		RoomID:          10,
		IndividualID:    42,
		FloorID:         3,
		ReservationTime: time.Date(2025, 10, 14, 10, 0, 0, 0, rules.Location),
		DurationMinutes: 40,
		CreatedAt:       time.Date(2025, 10, 12, 18, 0, 0, 0, rules.Location),
	}
}

func TestExecute_MoveTime(t *testing.T) {
	uc, repo, rules := testSetup(t)
	repo.reservation = upcomingReservation(rules)

	newStart := time.Date(2025, 10, 15, 8, 0, 0, 0, rules.Location)
	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID:   repo.reservation.ID,
		IndividualID:    42,
		ReservationTime: ptr.Ptr(newStart),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.True(t, newStart.Equal(repo.updated.ReservationTime))
	assert.Equal(t, 40, repo.updated.DurationMinutes)
	assert.Equal(t, repo.reservation.ID, resp.ID)
	assert.Equal(t, 302, resp.RoomNumber)
	assert.Equal(t, 3, resp.FloorNumber)

	// Изменяемая бронь не должна участвовать в проверках пересечений
	require.NotNil(t, repo.lastFilter.ExcludeID)
	assert.Equal(t, repo.reservation.ID, *repo.lastFilter.ExcludeID)
}

func TestExecute_ExtendDuration(t *testing.T) {
	uc, repo, rules := testSetup(t)
	repo.reservation = upcomingReservation(rules)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID:   repo.reservation.ID,
		IndividualID:    42,
		DurationMinutes: ptr.Ptr(120),
	})

	require.NoError(t, err)
	assert.Equal(t, 120, resp.DurationMinutes)
	assert.True(t, repo.reservation.ReservationTime.Equal(resp.ReservationTime))
}

func TestExecute_NotFound(t *testing.T) {
	uc, _, _ := testSetup(t)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID:   uuid.New(),
		IndividualID:    42,
		DurationMinutes: ptr.Ptr(80),
	})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_NotOwner(t *testing.T) {
	uc, repo, rules := testSetup(t)
	repo.reservation = upcomingReservation(rules)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID:   repo.reservation.ID,
		IndividualID:    99,
		DurationMinutes: ptr.Ptr(80),
	})

	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Nil(t, repo.updated)
}

func TestExecute_AlreadyStarted(t *testing.T) {
	uc, repo, rules := testSetup(t)
	repo.reservation = upcomingReservation(rules)
	// Началась час назад относительно зафиксированного "сейчас"
	repo.reservation.ReservationTime = time.Date(2025, 10, 13, 6, 0, 0, 0, rules.Location)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID:   repo.reservation.ID,
		IndividualID:    42,
		DurationMinutes: ptr.Ptr(80),
	})

	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestExecute_RuleViolation(t *testing.T) {
	uc, repo, rules := testSetup(t)
	repo.reservation = upcomingReservation(rules)
	// Другая бронь этажа занимает целевой интервал
	repo.existing = []*domain.Reservation{
		{
			ID:              uuid.New(),
			RoomID:          11,
			IndividualID:    7,
			FloorID:         3,
			ReservationTime: time.Date(2025, 10, 15, 8, 0, 0, 0, rules.Location),
			DurationMinutes: 80,
		},
	}

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID:   repo.reservation.ID,
		IndividualID:    42,
		ReservationTime: ptr.Ptr(time.Date(2025, 10, 15, 8, 0, 0, 0, rules.Location)),
	})

	require.Error(t, err)
	var violation *schedule.Violation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, schedule.RuleFloorOverlap, violation.Rule)
	assert.Nil(t, repo.updated)
}

func TestExecute_SlotTakenByConcurrentUpdate(t *testing.T) {
	uc, repo, rules := testSetup(t)
	repo.reservation = upcomingReservation(rules)
	repo.updateErr = reservationRepo.ErrSlotTaken

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID:   repo.reservation.ID,
		IndividualID:    42,
		DurationMinutes: ptr.Ptr(80),
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, repo, rules := testSetup(t)
	repo.reservation = upcomingReservation(rules)

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "missing reservation id",
			req:  &Request{IndividualID: 42, DurationMinutes: ptr.Ptr(80)},
		},
		{
			name: "missing individual id",
			req:  &Request{ReservationID: repo.reservation.ID, DurationMinutes: ptr.Ptr(80)},
		},
		{
			name: "nothing to update",
			req:  &Request{ReservationID: repo.reservation.ID, IndividualID: 42},
		},
		{
			name: "zero reservation time",
			req: &Request{
				ReservationID:   repo.reservation.ID,
				IndividualID:    42,
				ReservationTime: ptr.Ptr(time.Time{}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestComparisonWindow_CoversCandidateWeek(t *testing.T) {
	_, _, rules := testSetup(t)

	start := time.Date(2025, 10, 15, 8, 0, 0, 0, rules.Location)
	from, to := comparisonWindow(start, 40, rules)

	weekStart, weekEnd := schedule.WeekInterval(start, rules.Location)
	assert.True(t, !from.After(weekStart))
	assert.True(t, !to.Before(weekEnd))
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func reservationAt(start time.Time, minutes int) *Reservation {
	return &Reservation{ReservationTime: start, DurationMinutes: minutes}
}

func TestReservation_Overlaps(t *testing.T) {
	base := time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		a     *Reservation
		b     *Reservation
		wants bool
	}{
		{
			name:  "identical intervals",
			a:     reservationAt(base, 40),
			b:     reservationAt(base, 40),
			wants: true,
		},
		{
			name:  "partial overlap",
			a:     reservationAt(base, 80),
			b:     reservationAt(base.Add(40*time.Minute), 80),
			wants: true,
		},
		{
			name:  "containment",
			a:     reservationAt(base, 240),
			b:     reservationAt(base.Add(40*time.Minute), 40),
			wants: true,
		},
		{
			name:  "touching end to start",
			a:     reservationAt(base, 40),
			b:     reservationAt(base.Add(40*time.Minute), 40),
			wants: false,
		},
		{
			name:  "disjoint",
			a:     reservationAt(base, 40),
			b:     reservationAt(base.Add(3*time.Hour), 40),
			wants: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wants, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.wants, tt.b.Overlaps(tt.a))
		})
	}
}

func TestReservation_HasStarted(t *testing.T) {
	start := time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)
	r := reservationAt(start, 40)

	assert.False(t, r.HasStarted(start.Add(-time.Minute)))
	assert.True(t, r.HasStarted(start))
	assert.True(t, r.HasStarted(start.Add(time.Minute)))
}

func TestRoom_MatchesFloorNumber(t *testing.T) {
	tests := []struct {
		roomNumber  int
		floorNumber int
		wants       bool
	}{
		{roomNumber: 101, floorNumber: 1, wants: true},
		{roomNumber: 302, floorNumber: 3, wants: true},
		{roomNumber: 1204, floorNumber: 12, wants: true},
		{roomNumber: 401, floorNumber: 2, wants: false},
		{roomNumber: 101, floorNumber: 10, wants: true},
		{roomNumber: 12, floorNumber: 1, wants: false},
	}

	for _, tt := range tests {
		room := &Room{RoomNumber: tt.roomNumber}
		assert.Equal(t, tt.wants, room.MatchesFloorNumber(tt.floorNumber),
			"room %d on floor %d", tt.roomNumber, tt.floorNumber)
	}
}

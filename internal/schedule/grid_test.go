package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
)

func TestFreeIntervals(t *testing.T) {
	rules := testRules(t)
	day := at(t, rules, 14, 0, 0)

	t.Run("empty day is one full window", func(t *testing.T) {
		free := FreeIntervals(day, nil, rules)
		require.Len(t, free, 1)
		assert.Equal(t, "06:00", free[0].Start.String())
		assert.Equal(t, "23:00", free[0].End.String())
	})

	t.Run("two reservations split the window into three gaps", func(t *testing.T) {
		reservations := []*domain.Reservation{
			reservation(10, 3, at(t, rules, 14, 8, 0), 80),  // 08:00-09:20
			reservation(11, 3, at(t, rules, 14, 14, 0), 40), // 14:00-14:40
		}

		free := FreeIntervals(day, reservations, rules)
		require.Len(t, free, 3)
		assert.Equal(t, Interval{Start: "06:00", End: "08:00"}, free[0])
		assert.Equal(t, Interval{Start: "09:20", End: "14:00"}, free[1])
		assert.Equal(t, Interval{Start: "14:40", End: "23:00"}, free[2])
	})

	t.Run("unsorted input produces the same gaps", func(t *testing.T) {
		reservations := []*domain.Reservation{
			reservation(11, 3, at(t, rules, 14, 14, 0), 40),
			reservation(10, 3, at(t, rules, 14, 8, 0), 80),
		}

		free := FreeIntervals(day, reservations, rules)
		require.Len(t, free, 3)
		assert.Equal(t, Interval{Start: "09:20", End: "14:00"}, free[1])
	})

	t.Run("back to back reservations leave no gap between them", func(t *testing.T) {
		reservations := []*domain.Reservation{
			reservation(10, 3, at(t, rules, 14, 8, 0), 40), // 08:00-08:40
			reservation(11, 3, at(t, rules, 14, 8, 40), 40), // 08:40-09:20
		}

		free := FreeIntervals(day, reservations, rules)
		require.Len(t, free, 2)
		assert.Equal(t, Interval{Start: "06:00", End: "08:00"}, free[0])
		assert.Equal(t, Interval{Start: "09:20", End: "23:00"}, free[1])
	})

	t.Run("reservation at window start trims the leading gap", func(t *testing.T) {
		reservations := []*domain.Reservation{
			reservation(10, 3, at(t, rules, 14, 6, 0), 40),
		}

		free := FreeIntervals(day, reservations, rules)
		require.Len(t, free, 1)
		assert.Equal(t, Interval{Start: "06:40", End: "23:00"}, free[0])
	})

	t.Run("reservation ending at close trims the trailing gap", func(t *testing.T) {
		reservations := []*domain.Reservation{
			reservation(10, 3, at(t, rules, 14, 22, 20), 40), // 22:20-23:00
		}

		free := FreeIntervals(day, reservations, rules)
		require.Len(t, free, 1)
		assert.Equal(t, Interval{Start: "06:00", End: "22:20"}, free[0])
	})

	t.Run("other days reservations are ignored", func(t *testing.T) {
		reservations := []*domain.Reservation{
			reservation(10, 3, at(t, rules, 15, 8, 0), 240),
		}

		free := FreeIntervals(day, reservations, rules)
		require.Len(t, free, 1)
		assert.Equal(t, Interval{Start: "06:00", End: "23:00"}, free[0])
	})
}

func TestFreeIntervalsRange(t *testing.T) {
	rules := testRules(t)

	reservations := []*domain.Reservation{
		reservation(10, 3, at(t, rules, 14, 8, 0), 80),
	}

	days := FreeIntervalsRange(at(t, rules, 14, 0, 0), 2, reservations, rules)
	require.Len(t, days, 2)

	assert.Equal(t, "2025-10-14", days[0].Date)
	require.Len(t, days[0].Intervals, 2)

	assert.Equal(t, "2025-10-15", days[1].Date)
	require.Len(t, days[1].Intervals, 1)
	assert.Equal(t, Interval{Start: "06:00", End: "23:00"}, days[1].Intervals[0])
}

func TestOccupiedIntervals(t *testing.T) {
	rules := testRules(t)
	from := at(t, rules, 13, 0, 0) // понедельник

	roomNumbers := map[int64]int{10: 302, 11: 305}

	reservations := []*domain.Reservation{
		reservation(11, 3, at(t, rules, 13, 14, 0), 40),
		reservation(10, 3, at(t, rules, 13, 8, 0), 80),
		reservation(10, 3, at(t, rules, 20, 9, 0), 40), // вне диапазона
	}

	days := OccupiedIntervals(from, 7, reservations, roomNumbers, rules)
	require.Len(t, days, 7)

	// Понедельник: два интервала, отсортированы по началу
	require.Len(t, days[0].Intervals, 2)
	assert.Equal(t, RoomInterval{Start: "08:00", End: "09:20", RoomNumber: 302}, days[0].Intervals[0])
	assert.Equal(t, RoomInterval{Start: "14:00", End: "14:40", RoomNumber: 305}, days[0].Intervals[1])

	// Остальные дни присутствуют с пустыми списками
	for i := 1; i < 7; i++ {
		assert.NotNil(t, days[i].Intervals)
		assert.Empty(t, days[i].Intervals)
	}

	assert.Equal(t, "2025-10-13", days[0].Date)
	assert.Equal(t, "2025-10-19", days[6].Date)
}

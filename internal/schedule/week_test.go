package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfWeek(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Bucharest")
	require.NoError(t, err)

	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, loc)

	testCases := []struct {
		name string
		in   time.Time
	}{
		{name: "monday maps to itself", in: time.Date(2025, 10, 13, 0, 0, 0, 0, loc)},
		{name: "midweek", in: time.Date(2025, 10, 15, 18, 30, 0, 0, loc)},
		{name: "sunday belongs to the same week", in: time.Date(2025, 10, 19, 23, 59, 0, 0, loc)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, StartOfWeek(tc.in, loc).Equal(monday))
		})
	}

	t.Run("utc instant uses the local calendar", func(t *testing.T) {
		// 22:30 UTC воскресенья - уже понедельник 01:30 в Бухаресте
		utc := time.Date(2025, 10, 19, 22, 30, 0, 0, time.UTC)
		next := time.Date(2025, 10, 20, 0, 0, 0, 0, loc)
		assert.True(t, StartOfWeek(utc, loc).Equal(next))
	})
}

func TestWeekInterval(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Bucharest")
	require.NoError(t, err)

	start, end := WeekInterval(time.Date(2025, 10, 15, 12, 0, 0, 0, loc), loc)
	assert.True(t, start.Equal(time.Date(2025, 10, 13, 0, 0, 0, 0, loc)))
	assert.True(t, end.Equal(time.Date(2025, 10, 20, 0, 0, 0, 0, loc)))
}

func TestHorizonBounds(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Bucharest")
	require.NoError(t, err)

	start, end := HorizonBounds(time.Date(2025, 10, 15, 12, 0, 0, 0, loc), loc)
	assert.True(t, start.Equal(time.Date(2025, 10, 13, 0, 0, 0, 0, loc)))

	// Горизонт закрывается в конце воскресенья следующей недели
	assert.Equal(t, 2025, end.Year())
	assert.Equal(t, time.October, end.Month())
	assert.Equal(t, 26, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
}

func TestSameLocalDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Bucharest")
	require.NoError(t, err)

	a := time.Date(2025, 10, 13, 23, 30, 0, 0, loc)
	b := time.Date(2025, 10, 13, 0, 10, 0, 0, loc)
	assert.True(t, SameLocalDay(a, b, loc))

	// 22:00 UTC - уже следующий локальный день
	utc := time.Date(2025, 10, 13, 22, 0, 0, 0, time.UTC)
	assert.False(t, SameLocalDay(utc, b, loc))
}

package schedule

import (
	"sort"
	"time"

	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/types"
)

// Interval is a free time range inside one local day, in "HH:MM" bounds
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// RoomInterval is an occupied time range attributed to a room
type RoomInterval struct {
	Start      types.TimeString
	End        types.TimeString
	RoomNumber int
}

// DayFree lists the free intervals of one local calendar day
type DayFree struct {
	Date      string // YYYY-MM-DD, building-local
	Intervals []Interval
}

// DayOccupied lists the occupied intervals of one local calendar day
type DayOccupied struct {
	Date      string
	Intervals []RoomInterval
}

// FreeIntervals computes the maximal contiguous sub-intervals of the working
// window not covered by any reservation on the floor, for the local calendar
// day containing day. The walk is pointer-based over sorted reservations, so
// reservation boundaries need not align to any slot grid.
func FreeIntervals(day time.Time, reservations []*domain.Reservation, rules Rules) []Interval {
	local := day.In(rules.Location)
	y, m, d := local.Date()
	windowStart := time.Date(y, m, d, rules.OpenMinutes/60, rules.OpenMinutes%60, 0, 0, rules.Location)
	windowEnd := time.Date(y, m, d, rules.CloseMinutes/60, rules.CloseMinutes%60, 0, 0, rules.Location)

	// Берём только брони, реально пересекающие окно дня
	overlapping := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.ReservationTime.Before(windowEnd) && r.EndTime().After(windowStart) {
			overlapping = append(overlapping, r)
		}
	}
	sort.Slice(overlapping, func(i, j int) bool {
		return overlapping[i].ReservationTime.Before(overlapping[j].ReservationTime)
	})

	free := make([]Interval, 0, len(overlapping)+1)
	cursor := windowStart

	for _, r := range overlapping {
		start := r.ReservationTime.In(rules.Location)
		end := r.EndTime().In(rules.Location)

		if start.After(cursor) {
			gapEnd := start
			if gapEnd.After(windowEnd) {
				gapEnd = windowEnd
			}
			free = append(free, Interval{Start: types.NewTimeString(cursor), End: types.NewTimeString(gapEnd)})
		}
		if end.After(cursor) {
			cursor = end
		}
		if !cursor.Before(windowEnd) {
			return free
		}
	}

	if cursor.Before(windowEnd) {
		free = append(free, Interval{Start: types.NewTimeString(cursor), End: types.NewTimeString(windowEnd)})
	}
	return free
}

// FreeIntervalsRange computes FreeIntervals for each of days consecutive local
// days starting at from
func FreeIntervalsRange(from time.Time, days int, reservations []*domain.Reservation, rules Rules) []DayFree {
	local := from.In(rules.Location)
	y, m, d := local.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, rules.Location)

	result := make([]DayFree, 0, days)
	for i := 0; i < days; i++ {
		day := dayStart.AddDate(0, 0, i)
		result = append(result, DayFree{
			Date:      day.Format(domain.DateFormat),
			Intervals: FreeIntervals(day, reservations, rules),
		})
	}
	return result
}

// OccupiedIntervals lists every reservation's local start and end per calendar
// day, attributed to its room. Reservations are bucketed by their start's
// building-local date, so an instant near midnight UTC lands on the correct
// local day. roomNumbers maps room ids to displayed room numbers.
func OccupiedIntervals(from time.Time, days int, reservations []*domain.Reservation, roomNumbers map[int64]int, rules Rules) []DayOccupied {
	local := from.In(rules.Location)
	y, m, d := local.Date()
	rangeStart := time.Date(y, m, d, 0, 0, 0, 0, rules.Location)
	rangeEnd := rangeStart.AddDate(0, 0, days)

	byDate := make(map[string][]RoomInterval)
	for _, r := range reservations {
		start := r.ReservationTime.In(rules.Location)
		if start.Before(rangeStart) || !start.Before(rangeEnd) {
			continue
		}
		date := start.Format(domain.DateFormat)
		byDate[date] = append(byDate[date], RoomInterval{
			Start:      types.NewTimeString(start),
			End:        types.NewTimeString(r.EndTime().In(rules.Location)),
			RoomNumber: roomNumbers[r.RoomID],
		})
	}

	result := make([]DayOccupied, 0, days)
	for i := 0; i < days; i++ {
		date := rangeStart.AddDate(0, 0, i).Format(domain.DateFormat)
		intervals := byDate[date]
		sort.Slice(intervals, func(a, b int) bool {
			return intervals[a].Start.IsBefore(intervals[b].Start)
		})
		if intervals == nil {
			intervals = []RoomInterval{}
		}
		result = append(result, DayOccupied{Date: date, Intervals: intervals})
	}
	return result
}

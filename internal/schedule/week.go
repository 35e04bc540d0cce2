package schedule

import "time"

// StartOfWeek returns Monday 00:00:00 of the ISO week containing t, in loc
func StartOfWeek(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	// time.Weekday считает воскресенье нулём, ISO неделя начинается с понедельника
	daysSinceMonday := (int(local.Weekday()) + 6) % 7
	monday := local.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, loc)
}

// WeekInterval returns the half-open ISO week window [Monday 00:00, next Monday 00:00)
// containing t, in loc
func WeekInterval(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := StartOfWeek(t, loc)
	return start, start.AddDate(0, 0, 7)
}

// HorizonBounds returns the inclusive booking horizon for the given moment:
// from Monday 00:00:00 of the current local week through Sunday
// 23:59:59.999999 of the following week
func HorizonBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	start := StartOfWeek(now, loc)
	lastDay := start.AddDate(0, 0, 13)
	end := time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(), 23, 59, 59, 999999000, loc)
	return start, end
}

// SameLocalDay reports whether two instants fall on the same calendar day in loc
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	al, bl := a.In(loc), b.In(loc)
	y1, m1, d1 := al.Date()
	y2, m2, d2 := bl.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

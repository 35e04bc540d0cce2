package domain

// Reservation duration constraints
const (
	// DefaultDurationMinutes is the duration assigned when a request omits it
	DefaultDurationMinutes = 40

	// SlotStepMinutes is the washing cycle length; durations must be an exact multiple of it
	SlotStepMinutes = 40

	// MinDurationMinutes is the shortest allowed reservation
	MinDurationMinutes = 40

	// MaxDurationMinutes is the longest allowed reservation (4 hours)
	MaxDurationMinutes = 240
)

// WeeklyQuotaMinutes is the per-room cap on total reserved time within one ISO week (4 hours)
const WeeklyQuotaMinutes = 240

// HorizonDays is the booking horizon: reservations may target the remainder of the
// current local week plus the whole of next week (Monday + 13 days, inclusive)
const HorizonDays = 13

// DefaultMaxOccupants is the room occupancy limit applied when none is configured
const DefaultMaxOccupants = 2

// roomNumberWidth is the zero-padded width used when matching room numbers against floors
const roomNumberWidth = 3

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

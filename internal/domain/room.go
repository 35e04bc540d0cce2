package domain

import (
	"fmt"
	"strings"
)

// Room represents a living unit whose occupants may book the floor's shared resource
type Room struct {
	ID           int64
	FloorID      int64
	RoomNumber   int
	MaxOccupants int
}

// MatchesFloorNumber reports whether the room number is consistent with the floor:
// the room number, zero-padded to three digits, must start with the floor number
// (room 101 belongs to floor 1, room 1204 to floor 12)
func (r *Room) MatchesFloorNumber(floorNumber int) bool {
	padded := fmt.Sprintf("%0*d", roomNumberWidth, r.RoomNumber)
	return strings.HasPrefix(padded, fmt.Sprintf("%d", floorNumber))
}

// CanAccommodate reports whether one more occupant fits given the current count
func (r *Room) CanAccommodate(currentOccupants int) bool {
	return currentOccupants < r.MaxOccupants
}

// String returns a human-readable label for log and error messages
func (r *Room) String() string {
	return fmt.Sprintf("Room %d", r.RoomNumber)
}

package domain

import "fmt"

// Individual represents a person assigned to at most one room.
// Identity and authentication live in an external service; AccountID is the
// only reference to it, so scheduling logic stays decoupled from auth.
type Individual struct {
	ID         int64
	AccountID  string
	FirstName  string
	LastName   string
	NationalID *string
	Country    *string // ISO 3166-1 alpha-2 code
	RoomID     *int64
	IsStaff    bool
	AdminFloor *int64 // floor number this user administers, if any
}

// FullName returns the display name used in reservation listings
func (i *Individual) FullName() string {
	return fmt.Sprintf("%s %s", i.FirstName, i.LastName)
}

// HasRoom reports whether the individual is currently assigned to a room
func (i *Individual) HasRoom() bool {
	return i.RoomID != nil
}

// OccupiesRoom reports whether the individual is assigned to the given room
func (i *Individual) OccupiesRoom(roomID int64) bool {
	return i.RoomID != nil && *i.RoomID == roomID
}

// CanAdministerFloor reports whether the individual may exercise the
// administrative override on the given floor
func (i *Individual) CanAdministerFloor(floorNumber int) bool {
	if i.IsStaff {
		return true
	}
	return i.AdminFloor != nil && int(*i.AdminFloor) == floorNumber
}

package domain

import "fmt"

// Floor represents a building floor sharing a single washing-machine room.
// The washing machine is not modeled as its own entity: the floor itself is
// the schedulable unit, so no two rooms on one floor may reserve concurrently.
type Floor struct {
	ID          int64
	FloorNumber int
}

// String returns a human-readable label for log and error messages
func (f *Floor) String() string {
	return fmt.Sprintf("Floor %d", f.FloorNumber)
}

package unassign_occupant

import "context"

type RoomService interface {
	UnassignIndividual(ctx context.Context, actorID int64, individualID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_reservation

import "errors"

var (
	// ErrIndividualNotFound возвращается, когда жилец не найден
	ErrIndividualNotFound = errors.New("create_reservation: individual not found")

	// ErrNoRoomAssigned возвращается, когда жилец не заселён ни в одну комнату
	ErrNoRoomAssigned = errors.New("create_reservation: individual is not a room occupant")

	// ErrSlotTaken возвращается, когда интервал занят конкурентной бронью
	// (сработала страховка на уровне хранилища)
	ErrSlotTaken = errors.New("create_reservation: floor time slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

package update_reservation

import "errors"

var (
	// ErrReservationNotFound бронь не найдена
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrPermissionDenied бронь принадлежит другому жильцу
	ErrPermissionDenied = errors.New("update_reservation: reservation belongs to another individual")

	// ErrAlreadyStarted бронь уже началась, менять её нельзя
	ErrAlreadyStarted = errors.New("update_reservation: reservation has already started")

	// ErrSlotTaken слот занят конкурентной бронью
	ErrSlotTaken = errors.New("update_reservation: slot already taken")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("update_reservation: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("update_reservation: internal error")
)

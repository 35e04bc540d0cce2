package delete_reservation

import "errors"

var (
	// ErrReservationNotFound бронь не найдена
	ErrReservationNotFound = errors.New("delete_reservation: reservation not found")

	// ErrPermissionDenied бронь принадлежит другому жильцу и прав администратора нет
	ErrPermissionDenied = errors.New("delete_reservation: permission denied")

	// ErrAlreadyStarted владелец не может отменить начавшуюся бронь
	ErrAlreadyStarted = errors.New("delete_reservation: reservation has already started")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("delete_reservation: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("delete_reservation: internal error")
)

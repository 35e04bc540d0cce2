package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrIndividualNotFound возвращается, когда жилец не найден
	ErrIndividualNotFound = errors.New("individual not found")

	// ErrFloorNotFound возвращается, когда этаж не найден
	ErrFloorNotFound = errors.New("floor not found")

	// ErrAccessDenied возвращается, когда у жильца нет прав на просмотр брони
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

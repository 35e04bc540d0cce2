package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrFloorNotFound возвращается, когда этаж не найден
	ErrFloorNotFound = errors.New("floor not found")

	// ErrIndividualNotFound возвращается, когда жилец не найден
	ErrIndividualNotFound = errors.New("individual not found")

	// ErrRoomFull возвращается, когда комната заполнена
	ErrRoomFull = errors.New("room is at full capacity")

	// ErrRoomFloorMismatch возвращается, когда номер комнаты не соответствует её этажу
	ErrRoomFloorMismatch = errors.New("room number does not match its floor")

	// ErrNotAssigned возвращается при выселении незаселённого жильца
	ErrNotAssigned = errors.New("individual has no room assigned")

	// ErrAccessDenied возвращается, когда заселением занимается не персонал
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

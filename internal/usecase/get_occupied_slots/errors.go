package get_occupied_slots

import "errors"

var (
	// ErrFloorNotFound этаж не найден
	ErrFloorNotFound = errors.New("get_occupied_slots: floor not found")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("get_occupied_slots: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_occupied_slots: internal error")
)

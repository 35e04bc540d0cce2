package get_occupied_slots

import "github.com/gasparllamazares/LRM-ReservationService/internal/schedule"

// Request запрос занятых интервалов этажа
type Request struct {
	FloorID int64 `json:"floor_id"`
}

// Response занятые интервалы этажа на две текущие локальные недели
type Response struct {
	FloorNumber int                    `json:"floor_number"`
	Days        []schedule.DayOccupied `json:"days"`
}

package get_free_slots

import (
	"time"

	"github.com/gasparllamazares/LRM-ReservationService/internal/schedule"
)

// Request запрос свободных интервалов этажа
// Date nil означает "сегодня" в часовом поясе здания
type Request struct {
	FloorID int64      `json:"floor_id"`
	Date    *time.Time `json:"date,omitempty"`
	Days    int        `json:"days,omitempty"`
}

// Response ответ со свободными интервалами по дням
type Response struct {
	FloorNumber int                `json:"floor_number"`
	Days        []schedule.DayFree `json:"days"`
}

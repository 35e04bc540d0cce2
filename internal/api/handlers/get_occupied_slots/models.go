package get_occupied_slots

import (
	getOccupiedSlots "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/get_occupied_slots"
)

// IntervalResponse занятый интервал с номером комнаты
type IntervalResponse struct {
	Start      string `json:"start"` // "10:00"
	End        string `json:"end"`   // "10:40"
	RoomNumber int    `json:"roomNumber"`
}

// DayResponse занятые интервалы одного дня
type DayResponse struct {
	Date      string             `json:"date"` // "2025-10-15"
	Intervals []IntervalResponse `json:"intervals"`
}

// OccupiedSlotsResponse HTTP response model
type OccupiedSlotsResponse struct {
	FloorNumber int           `json:"floorNumber"`
	Days        []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupiedSlots.Response) *OccupiedSlotsResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		intervals := make([]IntervalResponse, 0, len(day.Intervals))
		for _, interval := range day.Intervals {
			intervals = append(intervals, IntervalResponse{
				Start:      interval.Start.String(),
				End:        interval.End.String(),
				RoomNumber: interval.RoomNumber,
			})
		}
		days = append(days, DayResponse{Date: day.Date, Intervals: intervals})
	}

	return &OccupiedSlotsResponse{
		FloorNumber: resp.FloorNumber,
		Days:        days,
	}
}

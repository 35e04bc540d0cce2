package get_free_slots

import (
	getFreeSlots "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/get_free_slots"
)

// IntervalResponse свободный интервал одного дня
type IntervalResponse struct {
	Start string `json:"start"` // "10:00"
	End   string `json:"end"`   // "11:20"
}

// DayResponse свободные интервалы одного дня
type DayResponse struct {
	Date      string             `json:"date"` // "2025-10-15"
	Intervals []IntervalResponse `json:"intervals"`
}

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	FloorNumber int           `json:"floorNumber"`
	Days        []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		intervals := make([]IntervalResponse, 0, len(day.Intervals))
		for _, interval := range day.Intervals {
			intervals = append(intervals, IntervalResponse{
				Start: interval.Start.String(),
				End:   interval.End.String(),
			})
		}
		days = append(days, DayResponse{Date: day.Date, Intervals: intervals})
	}

	return &FreeSlotsResponse{
		FloorNumber: resp.FloorNumber,
		Days:        days,
	}
}

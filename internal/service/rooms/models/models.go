package models

import (
	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	"github.com/gasparllamazares/LRM-ReservationService/internal/infra/storage/building"
)

// Request модели

// AssignRequest запрос на заселение жильца в комнату
type AssignRequest struct {
	IndividualID int64 `json:"individualId"`
	RoomNumber   int   `json:"roomNumber"`
}

// Response модели

// OccupantResponse житель комнаты
type OccupantResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	IsStaff  bool   `json:"isStaff,omitempty"`
}

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID           int64              `json:"id"`
	FloorID      int64              `json:"floorId"`
	RoomNumber   int                `json:"roomNumber"`
	MaxOccupants int                `json:"maxOccupants"`
	Occupants    []OccupantResponse `json:"occupants"`
}

// FloorSummaryResponse сводка по этажу
type FloorSummaryResponse struct {
	FloorNumber      int `json:"floorNumber"`
	TotalRooms       int `json:"totalRooms"`
	OccupiedRooms    int `json:"occupiedRooms"`
	TotalIndividuals int `json:"totalIndividuals"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель комнаты в DTO
func FromDomainRoom(room *domain.Room, occupants []*domain.Individual) *RoomResponse {
	if room == nil {
		return nil
	}

	resp := &RoomResponse{
		ID:           room.ID,
		FloorID:      room.FloorID,
		RoomNumber:   room.RoomNumber,
		MaxOccupants: room.MaxOccupants,
		Occupants:    make([]OccupantResponse, 0, len(occupants)),
	}

	for _, occupant := range occupants {
		resp.Occupants = append(resp.Occupants, OccupantResponse{
			ID:       occupant.ID,
			FullName: occupant.FullName(),
			IsStaff:  occupant.IsStaff,
		})
	}

	return resp
}

// FromFloorSummary конвертирует сводку хранилища в DTO
func FromFloorSummary(summary *building.FloorSummary) *FloorSummaryResponse {
	if summary == nil {
		return nil
	}

	return &FloorSummaryResponse{
		FloorNumber:      summary.FloorNumber,
		TotalRooms:       summary.TotalRooms,
		OccupiedRooms:    summary.OccupiedRooms,
		TotalIndividuals: summary.TotalIndividuals,
	}
}

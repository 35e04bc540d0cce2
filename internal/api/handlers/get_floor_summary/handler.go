package get_floor_summary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers"
	"github.com/gasparllamazares/LRM-ReservationService/internal/service/rooms"
)

const (
	msgInvalidFloorID = "некорректный ID этажа"
	msgFloorNotFound  = "этаж не найден"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/floors/{floorId}/summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем floorId из URL
	vars := mux.Vars(r)
	floorID, err := strconv.ParseInt(vars["floorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /floors/{id}/summary - Invalid floor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFloorID)
		return
	}

	summary, err := h.service.GetFloorSummary(r.Context(), floorID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrFloorNotFound):
			h.logger.Warn("GET /floors/{id}/summary - Floor not found: floor_id=%d", floorID)
			handlers.RespondNotFound(w, msgFloorNotFound)

		default:
			h.logger.Error("GET /floors/{id}/summary - Failed to get summary: floor_id=%d, error=%v", floorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /floors/{id}/summary - Summary retrieved: floor_id=%d", floorID)
	handlers.RespondJSON(w, http.StatusOK, summary)
}

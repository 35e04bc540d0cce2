package get_occupied_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers"
	getOccupiedSlots "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/get_occupied_slots"
)

const (
	msgInvalidFloorID = "некорректный ID этажа"
	msgFloorNotFound  = "этаж не найден"
)

type Handler struct {
	useCase GetOccupiedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupiedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/floors/{floorId}/occupied-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем floorId из URL
	vars := mux.Vars(r)
	floorID, err := strconv.ParseInt(vars["floorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /floors/{id}/occupied-slots - Invalid floor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFloorID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getOccupiedSlots.Request{FloorID: floorID})
	if err != nil {
		switch {
		case errors.Is(err, getOccupiedSlots.ErrFloorNotFound):
			h.logger.Warn("GET /floors/{id}/occupied-slots - Floor not found: floor_id=%d", floorID)
			handlers.RespondNotFound(w, msgFloorNotFound)

		case errors.Is(err, getOccupiedSlots.ErrInvalidInput):
			h.logger.Warn("GET /floors/{id}/occupied-slots - Invalid input: floor_id=%d, error=%v", floorID, err)
			handlers.RespondBadRequest(w, msgInvalidFloorID)

		default:
			h.logger.Error("GET /floors/{id}/occupied-slots - Failed to get occupied slots: floor_id=%d, error=%v",
				floorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /floors/{id}/occupied-slots - Occupied slots retrieved: floor_id=%d", floorID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

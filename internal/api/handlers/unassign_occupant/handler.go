package unassign_occupant

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers"
	"github.com/gasparllamazares/LRM-ReservationService/internal/api/middleware"
	"github.com/gasparllamazares/LRM-ReservationService/internal/service/rooms"
)

const (
	msgInvalidIndividualID = "некорректный ID жильца"
	msgMissingIndividualID = "отсутствует ID жильца"
	msgIndividualNotFound  = "жилец не найден"
	msgNotAssigned         = "жилец не заселён в комнату"
	msgForbidden           = "выселение доступно только персоналу"
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

// Handle DELETE /api/v1/rooms/{roomNumber}/occupants/{individualId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем individualId из URL
	vars := mux.Vars(r)
	individualID, err := strconv.ParseInt(vars["individualId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /rooms/{number}/occupants/{id} - Invalid individual ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIndividualID)
		return
	}

	// Получаем ID действующего жильца из контекста (через middleware Auth)
	actorID, ok := middleware.GetIndividualID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /rooms/{number}/occupants/{id} - Missing individual ID")
		handlers.RespondUnauthorized(w, msgMissingIndividualID)
		return
	}

	if err := h.service.UnassignIndividual(r.Context(), actorID, individualID); err != nil {
		switch {
		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("DELETE /rooms/{number}/occupants/{id} - Access denied: actor_id=%d", actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rooms.ErrIndividualNotFound):
			h.logger.Warn("DELETE /rooms/{number}/occupants/{id} - Individual not found: individual_id=%d", individualID)
			handlers.RespondNotFound(w, msgIndividualNotFound)

		case errors.Is(err, rooms.ErrNotAssigned):
			h.logger.Warn("DELETE /rooms/{number}/occupants/{id} - Not assigned: individual_id=%d", individualID)
			handlers.RespondError(w, http.StatusConflict, msgNotAssigned)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("DELETE /rooms/{number}/occupants/{id} - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidIndividualID)

		default:
			h.logger.Error("DELETE /rooms/{number}/occupants/{id} - Failed to unassign: individual_id=%d, error=%v",
				individualID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{number}/occupants/{id} - Individual unassigned: individual_id=%d", individualID)
	w.WriteHeader(http.StatusNoContent)
}

package assign_occupant

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers"
	"github.com/gasparllamazares/LRM-ReservationService/internal/api/middleware"
	"github.com/gasparllamazares/LRM-ReservationService/internal/service/rooms"
	"github.com/gasparllamazares/LRM-ReservationService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidRoomNumber   = "некорректный номер комнаты"
	msgMissingIndividualID = "отсутствует ID жильца"
	msgRoomNotFound        = "комната не найдена"
	msgIndividualNotFound  = "жилец не найден"
	msgRoomFull            = "комната заполнена"
	msgRoomFloorMismatch   = "номер комнаты не соответствует этажу"
	msgForbidden           = "заселение доступно только персоналу"
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

// Handle POST /api/v1/rooms/{roomNumber}/occupants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем roomNumber из URL
	vars := mux.Vars(r)
	roomNumber, err := strconv.Atoi(vars["roomNumber"])
	if err != nil {
		h.logger.Warn("POST /rooms/{number}/occupants - Invalid room number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomNumber)
		return
	}

	// Получаем ID действующего жильца из контекста (через middleware Auth)
	actorID, ok := middleware.GetIndividualID(r.Context())
	if !ok {
		h.logger.Warn("POST /rooms/{number}/occupants - Missing individual ID")
		handlers.RespondUnauthorized(w, msgMissingIndividualID)
		return
	}

	var req AssignOccupantRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/{number}/occupants - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.AssignIndividual(r.Context(), actorID, &models.AssignRequest{
		IndividualID: req.IndividualID,
		RoomNumber:   roomNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("POST /rooms/{number}/occupants - Access denied: actor_id=%d", actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{number}/occupants - Room not found: room_number=%d", roomNumber)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrIndividualNotFound):
			h.logger.Warn("POST /rooms/{number}/occupants - Individual not found: individual_id=%d", req.IndividualID)
			handlers.RespondNotFound(w, msgIndividualNotFound)

		case errors.Is(err, rooms.ErrRoomFull):
			h.logger.Warn("POST /rooms/{number}/occupants - Room full: room_number=%d", roomNumber)
			handlers.RespondError(w, http.StatusConflict, msgRoomFull)

		case errors.Is(err, rooms.ErrRoomFloorMismatch):
			h.logger.Warn("POST /rooms/{number}/occupants - Room/floor mismatch: room_number=%d", roomNumber)
			handlers.RespondError(w, http.StatusConflict, msgRoomFloorMismatch)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{number}/occupants - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /rooms/{number}/occupants - Failed to assign: room_number=%d, individual_id=%d, error=%v",
				roomNumber, req.IndividualID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{number}/occupants - Individual assigned: room_number=%d, individual_id=%d",
		roomNumber, req.IndividualID)
	handlers.RespondJSON(w, http.StatusOK, room)
}

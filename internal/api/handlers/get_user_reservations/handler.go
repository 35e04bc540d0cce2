package get_user_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers"
	"github.com/gasparllamazares/LRM-ReservationService/internal/api/middleware"
	"github.com/gasparllamazares/LRM-ReservationService/internal/service/reservations"
)

const (
	msgInvalidUserID       = "некорректный ID жильца"
	msgMissingIndividualID = "отсутствует ID жильца"
	msgForbidden           = "можно смотреть только свои брони"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/reservations - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Получаем ID жильца из контекста (через middleware Auth)
	individualID, ok := middleware.GetIndividualID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/reservations - Missing individual ID")
		handlers.RespondUnauthorized(w, msgMissingIndividualID)
		return
	}

	// Историю броней видит только сам жилец
	if userID != individualID {
		h.logger.Warn("GET /users/{id}/reservations - Access denied: user_id=%d, individual_id=%d",
			userID, individualID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetIndividualReservations(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/reservations - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("GET /users/{id}/reservations - Failed to get reservations: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/reservations - Reservations retrieved: user_id=%d, count=%d",
		userID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}

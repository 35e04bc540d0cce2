package delete_reservation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers"
	"github.com/gasparllamazares/LRM-ReservationService/internal/api/middleware"
	deleteReservation "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/delete_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgMissingIndividualID  = "отсутствует ID жильца"
	msgNotFound             = "бронь не найдена"
	msgForbidden            = "нет прав на отмену этой брони"
	msgAlreadyStarted       = "бронь уже началась"
)

type Handler struct {
	useCase DeleteReservationUseCase
	logger  Logger
}

func NewHandler(useCase DeleteReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationID, err := uuid.Parse(vars["reservationId"])
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Получаем ID жильца из контекста (через middleware Auth)
	individualID, ok := middleware.GetIndividualID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /reservations/{id} - Missing individual ID")
		handlers.RespondUnauthorized(w, msgMissingIndividualID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &deleteReservation.Request{
		ReservationID: reservationID,
		IndividualID:  individualID,
	})
	if err != nil {
		switch {
		case errors.Is(err, deleteReservation.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, deleteReservation.ErrPermissionDenied):
			h.logger.Warn("DELETE /reservations/{id} - Permission denied: reservation_id=%s, individual_id=%d",
				reservationID, individualID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, deleteReservation.ErrAlreadyStarted):
			h.logger.Warn("DELETE /reservations/{id} - Already started: reservation_id=%s", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyStarted)

		case errors.Is(err, deleteReservation.ErrInvalidInput):
			h.logger.Warn("DELETE /reservations/{id} - Invalid input: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed to delete reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation deleted successfully: reservation_id=%s, individual_id=%d",
		result.ID, individualID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

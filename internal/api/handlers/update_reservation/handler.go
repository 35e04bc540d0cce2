package update_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers"
	"github.com/gasparllamazares/LRM-ReservationService/internal/api/middleware"
	"github.com/gasparllamazares/LRM-ReservationService/internal/schedule"
	updateReservation "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/update_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidDateTime      = "некорректная дата или время, ожидаются YYYY-MM-DD и HH:MM"
	msgMissingIndividualID  = "отсутствует ID жильца"
	msgNotFound             = "бронь не найдена"
	msgForbidden            = "бронь принадлежит другому жильцу"
	msgAlreadyStarted       = "бронь уже началась"
	msgSlotTaken            = "интервал уже занят другой бронью"
)

var errMissingDatePart = errors.New("reservationDate and startTime must be provided together")

type Handler struct {
	useCase  UpdateReservationUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase UpdateReservationUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationID, err := uuid.Parse(vars["reservationId"])
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Получаем ID жильца из контекста (через middleware Auth)
	individualID, ok := middleware.GetIndividualID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id} - Missing individual ID")
		handlers.RespondUnauthorized(w, msgMissingIndividualID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID, individualID, h.location)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var violation *schedule.Violation
		if errors.As(err, &violation) {
			h.logger.Warn("PATCH /reservations/{id} - Rejected by rule %s: reservation_id=%s", violation.Rule, reservationID)
			handlers.RespondJSON(w, violationStatus(violation), handlers.ErrorResponse{
				Error:   violation.Message,
				Rule:    string(violation.Rule),
				Context: violation.Context,
			})
			return
		}

		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrPermissionDenied):
			h.logger.Warn("PATCH /reservations/{id} - Permission denied: reservation_id=%s, individual_id=%d",
				reservationID, individualID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateReservation.ErrAlreadyStarted):
			h.logger.Warn("PATCH /reservations/{id} - Already started: reservation_id=%s", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyStarted)

		case errors.Is(err, updateReservation.ErrSlotTaken):
			h.logger.Warn("PATCH /reservations/{id} - Slot taken: reservation_id=%s", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id} - Invalid input: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /reservations/{id} - Failed to update reservation: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result, h.location)

	h.logger.Info("PATCH /reservations/{id} - Reservation updated successfully: reservation_id=%s, individual_id=%d",
		reservationID, individualID)
	handlers.RespondJSON(w, http.StatusOK, response)
}

// violationStatus выбирает HTTP статус отказа правила
func violationStatus(v *schedule.Violation) int {
	switch v.Rule {
	case schedule.RuleFloorOverlap, schedule.RuleWeeklyQuota:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

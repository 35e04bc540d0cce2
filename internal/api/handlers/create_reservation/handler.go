package create_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers"
	"github.com/gasparllamazares/LRM-ReservationService/internal/api/middleware"
	"github.com/gasparllamazares/LRM-ReservationService/internal/schedule"
	createReservation "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректная дата или время, ожидаются YYYY-MM-DD и HH:MM"
	msgMissingIndividualID = "отсутствует ID жильца"
	msgIndividualNotFound  = "жилец не найден"
	msgNoRoomAssigned      = "жилец не заселён в комнату"
	msgSlotTaken           = "интервал уже занят другой бронью"
)

type Handler struct {
	useCase  CreateReservationUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateReservationUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем ID жильца из контекста (через middleware Auth)
	individualID, ok := middleware.GetIndividualID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing individual ID")
		handlers.RespondUnauthorized(w, msgMissingIndividualID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(individualID, h.location)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Отказ правила бронирования отдаем с именем правила и контекстом
		var violation *schedule.Violation
		if errors.As(err, &violation) {
			h.logger.Warn("POST /reservations - Rejected by rule %s: individual_id=%d", violation.Rule, individualID)
			handlers.RespondJSON(w, violationStatus(violation), handlers.ErrorResponse{
				Error:   violation.Message,
				Rule:    string(violation.Rule),
				Context: violation.Context,
			})
			return
		}

		switch {
		case errors.Is(err, createReservation.ErrIndividualNotFound):
			h.logger.Warn("POST /reservations - Individual not found: individual_id=%d", individualID)
			handlers.RespondNotFound(w, msgIndividualNotFound)

		case errors.Is(err, createReservation.ErrNoRoomAssigned):
			h.logger.Warn("POST /reservations - No room assigned: individual_id=%d", individualID)
			handlers.RespondError(w, http.StatusConflict, msgNoRoomAssigned)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reservations - Slot taken: individual_id=%d", individualID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: individual_id=%d, error=%v", individualID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: individual_id=%d, error=%v",
				individualID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result, h.location)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%s, individual_id=%d",
		result.ID, individualID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// violationStatus выбирает HTTP статус отказа: конфликт расписания или квоты
// отдается как 409, нарушения формата и окна бронирования как 400
func violationStatus(v *schedule.Violation) int {
	switch v.Rule {
	case schedule.RuleFloorOverlap, schedule.RuleWeeklyQuota:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

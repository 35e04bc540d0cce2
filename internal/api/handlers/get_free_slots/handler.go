package get_free_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers"
	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	getFreeSlots "github.com/gasparllamazares/LRM-ReservationService/internal/usecase/get_free_slots"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/ptr"
)

const (
	msgInvalidFloorID = "некорректный ID этажа"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDays    = "некорректное количество дней"
	msgFloorNotFound  = "этаж не найден"
)

type Handler struct {
	useCase  GetFreeSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/floors/{floorId}/free-slots?date=YYYY-MM-DD&days=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем floorId из URL
	vars := mux.Vars(r)
	floorID, err := strconv.ParseInt(vars["floorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /floors/{id}/free-slots - Invalid floor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFloorID)
		return
	}

	req := &getFreeSlots.Request{FloorID: floorID}

	// Опциональная дата, по умолчанию сегодня
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.ParseInLocation(domain.DateFormat, dateStr, h.location)
		if err != nil {
			h.logger.Warn("GET /floors/{id}/free-slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = ptr.Ptr(date)
	}

	// Опциональная глубина в днях
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			h.logger.Warn("GET /floors/{id}/free-slots - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.Days = days
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrFloorNotFound):
			h.logger.Warn("GET /floors/{id}/free-slots - Floor not found: floor_id=%d", floorID)
			handlers.RespondNotFound(w, msgFloorNotFound)

		case errors.Is(err, getFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /floors/{id}/free-slots - Invalid input: floor_id=%d, error=%v", floorID, err)
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("GET /floors/{id}/free-slots - Failed to get free slots: floor_id=%d, error=%v",
				floorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /floors/{id}/free-slots - Free slots retrieved: floor_id=%d, days=%d",
		floorID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

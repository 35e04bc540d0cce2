package get_floor_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/gasparllamazares/LRM-ReservationService/internal/api/handlers"
	"github.com/gasparllamazares/LRM-ReservationService/internal/domain"
	"github.com/gasparllamazares/LRM-ReservationService/internal/service/reservations"
	"github.com/gasparllamazares/LRM-ReservationService/internal/service/reservations/models"
	"github.com/gasparllamazares/LRM-ReservationService/pkg/ptr"
)

const (
	msgInvalidFloorID = "некорректный ID этажа"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod  = "некорректный период"
	msgFloorNotFound  = "этаж не найден"
)

type Handler struct {
	service  ReservationService
	location *time.Location
	logger   Logger
}

func NewHandler(service ReservationService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/floors/{floorId}/reservations?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем floorId из URL
	vars := mux.Vars(r)
	floorID, err := strconv.ParseInt(vars["floorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /floors/{id}/reservations - Invalid floor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFloorID)
		return
	}

	req := &models.GetFloorReservationsRequest{FloorID: floorID}

	// Опциональные границы периода; to трактуется включительно по дню
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.ParseInLocation(domain.DateFormat, fromStr, h.location)
		if err != nil {
			h.logger.Warn("GET /floors/{id}/reservations - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.From = ptr.Ptr(from)
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.ParseInLocation(domain.DateFormat, toStr, h.location)
		if err != nil {
			h.logger.Warn("GET /floors/{id}/reservations - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.To = ptr.Ptr(to.AddDate(0, 0, 1))
	}

	result, err := h.service.GetFloorReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrFloorNotFound):
			h.logger.Warn("GET /floors/{id}/reservations - Floor not found: floor_id=%d", floorID)
			handlers.RespondNotFound(w, msgFloorNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /floors/{id}/reservations - Invalid period: floor_id=%d, error=%v", floorID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /floors/{id}/reservations - Failed to get reservations: floor_id=%d, error=%v",
				floorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /floors/{id}/reservations - Reservations retrieved: floor_id=%d, count=%d",
		floorID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}

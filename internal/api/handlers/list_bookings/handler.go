package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SNK-BookingService/internal/api/handlers"
	"github.com/m04kA/SNK-BookingService/internal/service/bookings"
	"github.com/m04kA/SNK-BookingService/internal/service/bookings/models"
)

const msgInvalidFilter = "некорректные параметры фильтра"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?date=&phone=&tableId=&status=
// Используется и списком персонала (фильтр по дате), и страницей
// "мои бронирования" (фильтр по телефону).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if v := query.Get("date"); v != "" {
		req.Date = &v
	}
	if v := query.Get("phone"); v != "" {
		req.Phone = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("tableId"); v != "" {
		tableID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid tableId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.TableID = &tableID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

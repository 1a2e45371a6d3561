package reports

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SNK-BookingService/internal/api/handlers"
	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/internal/service/reports"
)

const (
	msgMissingRange = "не указан интервал, ожидаются параметры from=YYYY-MM-DD и to=YYYY-MM-DD"
	msgInvalidRange = "некорректный интервал дат"
	msgMissingDate  = "не указана дата, ожидается параметр date=YYYY-MM-DD"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleRevenue GET /api/v1/reports/revenue?from=&to=
func (h *Handler) HandleRevenue(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.dateRange(w, r, "GET /reports/revenue")
	if !ok {
		return
	}

	result, err := h.service.RevenueByDay(r.Context(), from, to)
	if err != nil {
		h.respondServiceError(w, "GET /reports/revenue", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleTableUsage GET /api/v1/reports/table-usage?from=&to=
func (h *Handler) HandleTableUsage(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.dateRange(w, r, "GET /reports/table-usage")
	if !ok {
		return
	}

	result, err := h.service.UsageByTable(r.Context(), from, to)
	if err != nil {
		h.respondServiceError(w, "GET /reports/table-usage", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandlePeakHours GET /api/v1/reports/peak-hours?from=&to=
func (h *Handler) HandlePeakHours(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.dateRange(w, r, "GET /reports/peak-hours")
	if !ok {
		return
	}

	result, err := h.service.PeakHours(r.Context(), from, to)
	if err != nil {
		h.respondServiceError(w, "GET /reports/peak-hours", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSummary GET /api/v1/reports/summary?date=
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /reports/summary - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /reports/summary - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.DailySummary(r.Context(), date)
	if err != nil {
		h.respondServiceError(w, "GET /reports/summary", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) dateRange(w http.ResponseWriter, r *http.Request, route string) (time.Time, time.Time, bool) {
	query := r.URL.Query()
	fromStr := query.Get("from")
	toStr := query.Get("to")

	if fromStr == "" || toStr == "" {
		h.logger.Warn("%s - Missing date range", route)
		handlers.RespondBadRequest(w, msgMissingRange)
		return time.Time{}, time.Time{}, false
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("%s - Invalid from date: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return time.Time{}, time.Time{}, false
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("%s - Invalid to date: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, reports.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRange)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

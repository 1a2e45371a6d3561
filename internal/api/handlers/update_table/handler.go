package update_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SNK-BookingService/internal/api/handlers"
	"github.com/m04kA/SNK-BookingService/internal/service/tables"
	"github.com/m04kA/SNK-BookingService/internal/service/tables/models"
)

const (
	msgInvalidTableID     = "некорректный ID стола"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTableData   = "некорректные данные стола"
	msgNotFound           = "стол не найден"
)

type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tableID, ok := h.tableID(w, r, "PUT /tables/{id}")
	if !ok {
		return
	}

	var req models.UpdateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tables/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.Update(r.Context(), tableID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /tables/{id}", tableID, err)
		return
	}

	h.logger.Info("PUT /tables/{id} - Table updated: table_id=%d", tableID)
	handlers.RespondJSON(w, http.StatusOK, table)
}

// HandleStatus PATCH /api/v1/tables/{tableId}/status
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	tableID, ok := h.tableID(w, r, "PATCH /tables/{id}/status")
	if !ok {
		return
	}

	var req models.UpdateTableStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tables/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.UpdateStatus(r.Context(), tableID, &req)
	if err != nil {
		h.respondServiceError(w, "PATCH /tables/{id}/status", tableID, err)
		return
	}

	h.logger.Info("PATCH /tables/{id}/status - Table status updated: table_id=%d, status=%s",
		tableID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, table)
}

func (h *Handler) tableID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	vars := mux.Vars(r)

	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid table ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return 0, false
	}

	return tableID, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, tableID int64, err error) {
	switch {
	case errors.Is(err, tables.ErrTableNotFound):
		h.logger.Warn("%s - Table not found: table_id=%d", route, tableID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, tables.ErrInvalidInput):
		h.logger.Warn("%s - Invalid table data: table_id=%d, error=%v", route, tableID, err)
		handlers.RespondBadRequest(w, msgInvalidTableData)

	default:
		h.logger.Error("%s - Failed: table_id=%d, error=%v", route, tableID, err)
		handlers.RespondInternalError(w)
	}
}

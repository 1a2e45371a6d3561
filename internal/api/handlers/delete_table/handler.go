package delete_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SNK-BookingService/internal/api/handlers"
	"github.com/m04kA/SNK-BookingService/internal/service/tables"
)

const (
	msgInvalidTableID   = "некорректный ID стола"
	msgNotFound         = "стол не найден"
	msgTableHasBookings = "нельзя удалить стол с бронированиями"
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

// Handle DELETE /api/v1/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	if err := h.service.Delete(r.Context(), tableID); err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("DELETE /tables/{id} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tables.ErrTableHasBookings):
			h.logger.Warn("DELETE /tables/{id} - Table has bookings: table_id=%d", tableID)
			handlers.RespondError(w, http.StatusConflict, msgTableHasBookings)

		default:
			h.logger.Error("DELETE /tables/{id} - Failed: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tables/{id} - Table deleted: table_id=%d", tableID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

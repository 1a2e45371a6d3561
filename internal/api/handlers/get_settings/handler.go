package get_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SNK-BookingService/internal/api/handlers"
	"github.com/m04kA/SNK-BookingService/internal/service/settings"
)

const msgNotFound = "настройки не найдены"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.respondError(w, "GET /settings", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandlePublic GET /api/v1/settings/public
// Публичный срез настроек для формы бронирования: часы работы, цены, QR.
func (h *Handler) HandlePublic(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetPublic(r.Context())
	if err != nil {
		h.respondError(w, "GET /settings/public", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, settings.ErrSettingsNotFound):
		h.logger.Error("%s - Settings record is missing", route)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed to get settings: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

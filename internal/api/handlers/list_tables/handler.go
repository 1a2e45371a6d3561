package list_tables

import (
	"net/http"

	"github.com/m04kA/SNK-BookingService/internal/api/handlers"
)

type Handler struct {
	useCase ListTablesUseCase
	logger  Logger
}

func NewHandler(useCase ListTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /tables - Failed to list tables: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

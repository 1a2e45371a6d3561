package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SNK-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SNK-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTableNotFound      = "стол не найден"
	msgTableNotAvailable  = "стол недоступен для бронирования"
	msgNameTooShort       = "имя должно содержать минимум 2 символа"
	msgInvalidPhone       = "некорректный номер телефона"
	msgSlotNotSelected    = "не выбрано время начала"
	msgSlotNotOnGrid      = "время начала не попадает в сетку слотов"
	msgInvalidDuration    = "некорректная длительность бронирования"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgRateLimitExceeded  = "превышен дневной лимит бронирований для этого номера"
	msgSlotConflict       = "выбранное время пересекается с существующим бронированием"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTableNotFound):
			h.logger.Warn("POST /bookings - Table not found: table_id=%d", req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createBooking.ErrTableNotAvailable):
			h.logger.Warn("POST /bookings - Table not available: table_id=%d", req.TableID)
			handlers.RespondError(w, http.StatusConflict, msgTableNotAvailable)

		case errors.Is(err, createBooking.ErrNameTooShort):
			h.logger.Warn("POST /bookings - Name too short: table_id=%d", req.TableID)
			handlers.RespondBadRequest(w, msgNameTooShort)

		case errors.Is(err, createBooking.ErrInvalidPhone):
			h.logger.Warn("POST /bookings - Invalid phone: table_id=%d", req.TableID)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createBooking.ErrSlotNotSelected):
			h.logger.Warn("POST /bookings - Slot not selected: table_id=%d", req.TableID)
			handlers.RespondBadRequest(w, msgSlotNotSelected)

		case errors.Is(err, createBooking.ErrSlotNotOnGrid):
			h.logger.Warn("POST /bookings - Slot not on grid: table_id=%d, time=%s", req.TableID, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotNotOnGrid)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: table_id=%d, duration=%dh", req.TableID, req.DurationHours)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: table_id=%d, date=%s", req.TableID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrRateLimitExceeded):
			h.logger.Warn("POST /bookings - Rate limit exceeded: table_id=%d, date=%s", req.TableID, req.Date)
			handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimitExceeded)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: table_id=%d, date=%s, time=%s",
				req.TableID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: table_id=%d, error=%v", req.TableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, table_id=%d",
		result.ID, result.TableID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

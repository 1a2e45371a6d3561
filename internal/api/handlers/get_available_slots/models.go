package get_available_slots

import (
	"github.com/m04kA/SNK-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SNK-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailableSlotsResponse HTTP модель ответа с доступными слотами
type AvailableSlotsResponse struct {
	TableID      int64           `json:"tableId"`
	Date         string          `json:"date"`
	PricePerHour float64         `json:"pricePerHour"`
	Slots        []*SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]*SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = &SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &AvailableSlotsResponse{
		TableID:      resp.TableID,
		Date:         resp.Date.Format(domain.DateFormat),
		PricePerHour: resp.PricePerHour,
		Slots:        slots,
	}
}

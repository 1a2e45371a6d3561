package list_tables

import (
	listTables "github.com/m04kA/SNK-BookingService/internal/usecase/list_tables"
)

// TableResponse HTTP модель стола с производными полями
type TableResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Status         string   `json:"status"`
	PricePerHour   float64  `json:"pricePerHour"`
	AvailableSlots []string `json:"availableSlots"`
	OccupiedUntil  *string  `json:"occupiedUntil,omitempty"`
}

// ListTablesResponse HTTP модель списка столов
type ListTablesResponse struct {
	Tables []*TableResponse `json:"tables"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listTables.Response) *ListTablesResponse {
	tables := make([]*TableResponse, len(resp.Tables))
	for i, t := range resp.Tables {
		slots := make([]string, len(t.AvailableSlots))
		for j, s := range t.AvailableSlots {
			slots[j] = s.String()
		}

		var occupiedUntil *string
		if t.OccupiedUntil != nil {
			v := t.OccupiedUntil.String()
			occupiedUntil = &v
		}

		tables[i] = &TableResponse{
			ID:             t.ID,
			Name:           t.Name,
			Type:           t.Type,
			Status:         t.Status,
			PricePerHour:   t.PricePerHour,
			AvailableSlots: slots,
			OccupiedUntil:  occupiedUntil,
		}
	}

	return &ListTablesResponse{Tables: tables}
}

package models

import (
	"time"

	"github.com/m04kA/SNK-BookingService/internal/domain"
)

// CreateTableRequest запрос на создание стола
type CreateTableRequest struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`             // standard | vip
	Status *string `json:"status,omitempty"` // по умолчанию available
}

// UpdateTableRequest запрос на обновление стола
type UpdateTableRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// UpdateTableStatusRequest запрос на смену статуса стола
type UpdateTableStatusRequest struct {
	Status string `json:"status"` // available | occupied | maintenance
}

// TableResponse представление стола в ответах сервиса
type TableResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomainTable конвертирует domain-стол в response
func FromDomainTable(t *domain.Table) *TableResponse {
	return &TableResponse{
		ID:        t.ID,
		Name:      t.Name,
		Type:      string(t.Type),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}

package models

import (
	"time"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/pkg/types"
)

// UpdateSettingsRequest частичное обновление настроек: nil-поля не изменяются
type UpdateSettingsRequest struct {
	OpenTime             *string  `json:"openTime,omitempty"`  // "HH:MM"
	CloseTime            *string  `json:"closeTime,omitempty"` // "HH:MM"
	StandardPrice        *float64 `json:"standardPrice,omitempty"`
	VIPPrice             *float64 `json:"vipPrice,omitempty"`
	LateThresholdMinutes *int     `json:"lateThresholdMinutes,omitempty"`
	PaymentQRURL         *string  `json:"paymentQrUrl,omitempty"`
}

// ToDomainUpdate валидирует запрос и собирает domain-обновление
func (r *UpdateSettingsRequest) ToDomainUpdate() (domain.ShopSettingsUpdate, error) {
	var update domain.ShopSettingsUpdate

	if r.OpenTime != nil {
		ts := types.TimeString(*r.OpenTime)
		if err := ts.Validate(); err != nil {
			return update, err
		}
		update.OpenTime = &ts
	}
	if r.CloseTime != nil {
		ts := types.TimeString(*r.CloseTime)
		if err := ts.Validate(); err != nil {
			return update, err
		}
		update.CloseTime = &ts
	}
	update.StandardPrice = r.StandardPrice
	update.VIPPrice = r.VIPPrice
	update.LateThresholdMinutes = r.LateThresholdMinutes
	update.PaymentQRURL = r.PaymentQRURL

	return update, nil
}

// SettingsResponse полное представление настроек (админский вид)
type SettingsResponse struct {
	OpenTime             string  `json:"openTime"`
	CloseTime            string  `json:"closeTime"`
	StandardPrice        float64 `json:"standardPrice"`
	VIPPrice             float64 `json:"vipPrice"`
	LateThresholdMinutes int     `json:"lateThresholdMinutes"`
	PaymentQRURL         *string `json:"paymentQrUrl,omitempty"`
	UpdatedAt            string  `json:"updatedAt"`
}

// PublicSettingsResponse публичное представление настроек для клиентов
type PublicSettingsResponse struct {
	OpenTime      string  `json:"openTime"`
	CloseTime     string  `json:"closeTime"`
	StandardPrice float64 `json:"standardPrice"`
	VIPPrice      float64 `json:"vipPrice"`
	PaymentQRURL  *string `json:"paymentQrUrl,omitempty"`
}

// FromDomainSettings конвертирует domain-настройки в полный response
func FromDomainSettings(s *domain.ShopSettings) *SettingsResponse {
	return &SettingsResponse{
		OpenTime:             s.OpenTime.String(),
		CloseTime:            s.CloseTime.String(),
		StandardPrice:        s.StandardPrice,
		VIPPrice:             s.VIPPrice,
		LateThresholdMinutes: s.LateThreshold(),
		PaymentQRURL:         s.PaymentQRURL,
		UpdatedAt:            s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainSettingsPublic конвертирует domain-настройки в публичный response
func FromDomainSettingsPublic(s *domain.ShopSettings) *PublicSettingsResponse {
	return &PublicSettingsResponse{
		OpenTime:      s.OpenTime.String(),
		CloseTime:     s.CloseTime.String(),
		StandardPrice: s.StandardPrice,
		VIPPrice:      s.VIPPrice,
		PaymentQRURL:  s.PaymentQRURL,
	}
}

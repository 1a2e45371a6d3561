package domain

import (
	"time"

	"github.com/m04kA/SNK-BookingService/pkg/types"
)

// ShopSettings represents the singleton shop configuration record.
// It is loaded once per operation and never cached across operations.
type ShopSettings struct {
	ID                   int64
	OpenTime             types.TimeString
	CloseTime            types.TimeString
	StandardPrice        float64
	VIPPrice             float64
	LateThresholdMinutes int
	PaymentQRURL         *string

	UpdatedAt time.Time
}

// HourlyRate returns the hourly price for a table of the given type
func (s *ShopSettings) HourlyRate(tableType TableType) float64 {
	if tableType == TableVIP {
		return s.VIPPrice
	}
	return s.StandardPrice
}

// LateThreshold returns the no-show grace period, falling back to the default
// when the stored value is not set
func (s *ShopSettings) LateThreshold() int {
	if s.LateThresholdMinutes <= 0 {
		return DefaultLateThresholdMinutes
	}
	return s.LateThresholdMinutes
}

// ShopSettingsUpdate частичное обновление настроек: nil-поля не изменяются
type ShopSettingsUpdate struct {
	OpenTime             *types.TimeString
	CloseTime            *types.TimeString
	StandardPrice        *float64
	VIPPrice             *float64
	LateThresholdMinutes *int
	PaymentQRURL         *string
}

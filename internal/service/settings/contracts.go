package settings

import (
	"context"

	"github.com/m04kA/SNK-BookingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек магазина
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ShopSettings, error)
	Update(ctx context.Context, update domain.ShopSettingsUpdate) (*domain.ShopSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

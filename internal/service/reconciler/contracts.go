package reconciler

import (
	"context"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/internal/integrations/notifier"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	UpdateStatus(ctx context.Context, id int64, status domain.TableStatus) error
}

// Notifier интерфейс внешнего приёмника уведомлений
type Notifier interface {
	Send(ctx context.Context, event notifier.Event) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

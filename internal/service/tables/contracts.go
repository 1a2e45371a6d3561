package tables

import (
	"context"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/internal/integrations/notifier"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	Update(ctx context.Context, id int64, name string, tableType domain.TableType) (*domain.Table, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TableStatus) error
	Delete(ctx context.Context, id int64) error
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

package list_tables

import (
	"context"

	listTables "github.com/m04kA/SNK-BookingService/internal/usecase/list_tables"
)

type ListTablesUseCase interface {
	Execute(ctx context.Context) (*listTables.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

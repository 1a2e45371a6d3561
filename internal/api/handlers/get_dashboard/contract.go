package get_dashboard

import (
	"context"

	"github.com/m04kA/SNK-BookingService/internal/service/reports/models"
)

type ReportService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

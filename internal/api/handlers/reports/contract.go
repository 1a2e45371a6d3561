package reports

import (
	"context"
	"time"

	"github.com/m04kA/SNK-BookingService/internal/service/reports/models"
)

type ReportService interface {
	RevenueByDay(ctx context.Context, from, to time.Time) (*models.RevenueReport, error)
	UsageByTable(ctx context.Context, from, to time.Time) (*models.TableUsageReport, error)
	PeakHours(ctx context.Context, from, to time.Time) (*models.PeakHoursReport, error)
	DailySummary(ctx context.Context, date time.Time) (*models.DailySummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

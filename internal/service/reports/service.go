package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/internal/service/reports/models"
)

// revenueStatuses статусы, учитываемые в выручке и загрузке
var revenueStatuses = []domain.BookingStatus{
	domain.StatusConfirmed,
	domain.StatusCompleted,
}

// recentBookingsLimit количество последних бронирований на дашборде
const recentBookingsLimit = 5

// Service read-only сервис отчетов: агрегаты строятся по выборке из БД,
// никакие результаты не кешируются
type Service struct {
	bookingRepo  BookingRepository
	tableRepo    TableRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		tableRepo:    tableRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider устанавливает провайдер времени (для тестирования)
func (s *Service) SetTimeProvider(tp TimeProvider) {
	s.timeProvider = tp
}

// RevenueByDay строит выручку по дням за закрытый интервал [from, to].
// Учитываются только confirmed и completed бронирования; дни без
// бронирований в результат не попадают.
func (s *Service) RevenueByDay(ctx context.Context, from, to time.Time) (*models.RevenueReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByDateRange(ctx, from, to, revenueStatuses)
	if err != nil {
		s.logger.Error("RevenueByDay: repository error: %v", err)
		return nil, fmt.Errorf("%w: RevenueByDay - repository error: %v", ErrInternal, err)
	}

	byDay := make(map[string]*models.DailyRevenue)
	for _, b := range bookings {
		key := b.Date.Format(domain.DateFormat)
		day, ok := byDay[key]
		if !ok {
			day = &models.DailyRevenue{Date: key}
			byDay[key] = day
		}
		day.Revenue += b.TotalPrice
		day.BookingCount++
	}

	days := make([]*models.DailyRevenue, 0, len(byDay))
	for _, day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return &models.RevenueReport{
		From: from.Format(domain.DateFormat),
		To:   to.Format(domain.DateFormat),
		Days: days,
	}, nil
}

// UsageByTable строит загрузку столов за интервал: часы, выручка и количество
// бронирований на стол. Результат отсортирован по выручке (убывание).
func (s *Service) UsageByTable(ctx context.Context, from, to time.Time) (*models.TableUsageReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByDateRange(ctx, from, to, revenueStatuses)
	if err != nil {
		s.logger.Error("UsageByTable: repository error: %v", err)
		return nil, fmt.Errorf("%w: UsageByTable - repository error: %v", ErrInternal, err)
	}

	byTable := make(map[int64]*models.TableUsage)
	for _, b := range bookings {
		usage, ok := byTable[b.TableID]
		if !ok {
			usage = &models.TableUsage{TableID: b.TableID}
			if b.TableName != nil {
				usage.TableName = *b.TableName
			}
			byTable[b.TableID] = usage
		}

		hours, err := b.DurationHours()
		if err != nil {
			s.logger.Warn("UsageByTable: booking id=%d has malformed time window: %v", b.ID, err)
			continue
		}

		usage.Hours += hours
		usage.Revenue += b.TotalPrice
		usage.BookingCount++
	}

	tables := make([]*models.TableUsage, 0, len(byTable))
	for _, usage := range byTable {
		tables = append(tables, usage)
	}
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Revenue > tables[j].Revenue
	})

	return &models.TableUsageReport{
		From:   from.Format(domain.DateFormat),
		To:     to.Format(domain.DateFormat),
		Tables: tables,
	}, nil
}

// PeakHours строит распределение бронирований по часу начала.
// Возвращаются все 24 часа, включая нулевые.
func (s *Service) PeakHours(ctx context.Context, from, to time.Time) (*models.PeakHoursReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByDateRange(ctx, from, to, revenueStatuses)
	if err != nil {
		s.logger.Error("PeakHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: PeakHours - repository error: %v", ErrInternal, err)
	}

	counts := make([]int, 24)
	for _, b := range bookings {
		startMin, err := b.StartTime.Minutes()
		if err != nil {
			s.logger.Warn("PeakHours: booking id=%d has malformed start time: %v", b.ID, err)
			continue
		}
		counts[(startMin/60)%24]++
	}

	hours := make([]*models.HourLoad, 24)
	for h := 0; h < 24; h++ {
		hours[h] = &models.HourLoad{Hour: h, BookingCount: counts[h]}
	}

	return &models.PeakHoursReport{
		From:  from.Format(domain.DateFormat),
		To:    to.Format(domain.DateFormat),
		Hours: hours,
	}, nil
}

// DailySummary строит сводку по одному дню: количество бронирований по
// группам статусов и выручка (confirmed + completed)
func (s *Service) DailySummary(ctx context.Context, date time.Time) (*models.DailySummary, error) {
	bookings, err := s.bookingRepo.GetByDateRange(ctx, date, date, nil)
	if err != nil {
		s.logger.Error("DailySummary: repository error: %v", err)
		return nil, fmt.Errorf("%w: DailySummary - repository error: %v", ErrInternal, err)
	}

	return buildDailySummary(date, bookings), nil
}

// DashboardStats строит оперативную сводку: сегодняшний день, занятость
// столов и последние бронирования
func (s *Service) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	todayBookings, err := s.bookingRepo.GetByDateRange(ctx, today, today, nil)
	if err != nil {
		s.logger.Error("DashboardStats: repository error fetching today bookings: %v", err)
		return nil, fmt.Errorf("%w: DashboardStats - repository error: %v", ErrInternal, err)
	}

	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		s.logger.Error("DashboardStats: repository error fetching tables: %v", err)
		return nil, fmt.Errorf("%w: DashboardStats - repository error: %v", ErrInternal, err)
	}

	stats := &models.DashboardStats{
		Today:       buildDailySummary(today, todayBookings),
		TotalTables: len(tables),
	}
	for _, t := range tables {
		switch t.Status {
		case domain.TableAvailable:
			stats.AvailableTables++
		case domain.TableOccupied:
			stats.OccupiedTables++
		case domain.TableMaintenance:
			stats.MaintenanceTables++
		}
	}

	recent, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		Limit:       recentBookingsLimit,
		NewestFirst: true,
	})
	if err != nil {
		s.logger.Error("DashboardStats: repository error fetching recent bookings: %v", err)
		return nil, fmt.Errorf("%w: DashboardStats - repository error: %v", ErrInternal, err)
	}

	stats.RecentBookings = make([]*models.RecentBooking, len(recent))
	for i, b := range recent {
		stats.RecentBookings[i] = &models.RecentBooking{
			ID:           b.ID,
			TableName:    b.TableName,
			CustomerName: b.CustomerName,
			Date:         b.Date.Format(domain.DateFormat),
			StartTime:    b.StartTime.String(),
			EndTime:      b.EndTime.String(),
			Status:       string(b.Status),
			TotalPrice:   b.TotalPrice,
		}
	}

	return stats, nil
}

// buildDailySummary раскладывает бронирования одного дня по группам статусов
func buildDailySummary(date time.Time, bookings []*domain.Booking) *models.DailySummary {
	summary := &models.DailySummary{
		Date:          date.Format(domain.DateFormat),
		TotalBookings: len(bookings),
	}

	for _, b := range bookings {
		switch b.Status {
		case domain.StatusConfirmed, domain.StatusCompleted:
			summary.ConfirmedBookings++
			summary.Revenue += b.TotalPrice
		case domain.StatusPending:
			summary.PendingBookings++
		case domain.StatusCancelled, domain.StatusNoShow:
			summary.CancelledBookings++
		}
	}

	return summary
}

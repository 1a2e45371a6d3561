package list_tables

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/pkg/timegrid"
)

// UseCase use case для получения списка столов с производными полями.
// Каждый вызов прогоняет сверку состояния: просроченные pending-бронирования
// помечаются no_show, зависшие occupied-столы освобождаются. Вызывающий сразу
// видит исправленное состояние, корректирующие записи уходят в фоне.
type UseCase struct {
	tableRepo    TableRepository
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	reconciler   Reconciler
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tableRepo TableRepository,
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	reconciler Reconciler,
	logger Logger,
) *UseCase {
	return &UseCase{
		tableRepo:    tableRepo,
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		reconciler:   reconciler,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider устанавливает провайдер времени (для тестирования)
func (uc *UseCase) SetTimeProvider(tp TimeProvider) {
	uc.timeProvider = tp
}

// Execute выполняет use case получения списка столов
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// 1. Снимок текущего состояния: столы, сегодняшние бронирования, настройки
	tables, err := uc.tableRepo.List(ctx)
	if err != nil {
		uc.logger.Error("ListTables: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	todayBookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{Date: &today})
	if err != nil {
		uc.logger.Error("ListTables: failed to get today bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("ListTables: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 2. Сверка: snapshot корректируется синхронно, записи уходят в фоне
	uc.reconciler.Run(tables, todayBookings, settings, now)

	// 3. Производные поля пересчитываются на каждое чтение
	grid, err := timegrid.SlotMinutes(
		settings.OpenTime.String(),
		settings.CloseTime.String(),
		domain.SlotIntervalMinutes,
	)
	if err != nil {
		uc.logger.Error("ListTables: failed to build slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	nowMinutes := now.Hour()*60 + now.Minute()

	byTable := make(map[int64][]*domain.Booking, len(tables))
	for _, b := range todayBookings {
		byTable[b.TableID] = append(byTable[b.TableID], b)
	}

	views := make([]TableView, len(tables))
	for i, t := range tables {
		tableBookings := byTable[t.ID]

		views[i] = TableView{
			ID:             t.ID,
			Name:           t.Name,
			Type:           string(t.Type),
			Status:         string(t.Status),
			PricePerHour:   settings.HourlyRate(t.Type),
			AvailableSlots: availableSlotsPreview(grid, tableBookings, nowMinutes),
			OccupiedUntil:  occupiedUntil(tableBookings, nowMinutes),
		}
	}

	uc.logger.Info("ListTables: returning %d tables", len(views))

	return &Response{Tables: views}, nil
}

package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	tableRepo "github.com/m04kA/SNK-BookingService/internal/infra/storage/table"
	"github.com/m04kA/SNK-BookingService/pkg/timegrid"
	"github.com/m04kA/SNK-BookingService/pkg/types"
)

// UseCase use case для получения доступных слотов стола на дату
type UseCase struct {
	tableRepo    TableRepository
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tableRepo TableRepository,
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		tableRepo:    tableRepo,
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider устанавливает провайдер времени (для тестирования)
func (uc *UseCase) SetTimeProvider(tp TimeProvider) {
	uc.timeProvider = tp
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: table=%d, date=%s",
		req.TableID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем существование стола
	table, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("GetAvailableSlots: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	// 4. Настройки читаются заново на каждый запрос: смена часов работы
	// или цен действует немедленно
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 5. Дата в прошлом — слотов нет, это не ошибка
	if isDateInPast(req.Date, now) {
		return &Response{
			TableID:      req.TableID,
			Date:         req.Date,
			PricePerHour: settings.HourlyRate(table.Type),
			Slots:        []Slot{},
		}, nil
	}

	// 6. Получаем занимающие бронирования стола на эту дату
	bookings, err := uc.bookingRepo.GetByTableAndDate(ctx, req.TableID, req.Date, domain.OccupyingStatuses)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Строим сетку и отбрасываем занятое. Для сегодняшней даты остаются
	// только слоты строго позже текущего времени.
	nowMinutes := now.Hour()*60 + now.Minute()
	slotMinutes, err := availableSlotMinutes(
		settings.OpenTime.String(),
		settings.CloseTime.String(),
		collectWindows(bookings),
		isSameDay(req.Date, now),
		nowMinutes,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	slots := make([]Slot, len(slotMinutes))
	for i, m := range slotMinutes {
		slots[i] = Slot{
			StartTime:       types.TimeString(timegrid.FromMinutes(m)),
			DurationMinutes: domain.SlotIntervalMinutes,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for table=%d, date=%s",
		len(slots), req.TableID, req.Date.Format(domain.DateFormat))

	return &Response{
		TableID:      req.TableID,
		Date:         req.Date,
		PricePerHour: settings.HourlyRate(table.Type),
		Slots:        slots,
	}, nil
}

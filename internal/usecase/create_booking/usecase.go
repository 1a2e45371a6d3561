package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SNK-BookingService/internal/infra/storage/booking"
	tableRepo "github.com/m04kA/SNK-BookingService/internal/infra/storage/table"
	"github.com/m04kA/SNK-BookingService/internal/integrations/notifier"
	"github.com/m04kA/SNK-BookingService/pkg/timegrid"
	"github.com/m04kA/SNK-BookingService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	tableRepo    TableRepository
	settingsRepo SettingsRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	settingsRepo SettingsRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tableRepo:    tableRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider устанавливает провайдер времени (для тестирования)
func (uc *UseCase) SetTimeProvider(tp TimeProvider) {
	uc.timeProvider = tp
}

// Execute выполняет use case создания бронирования.
// Проверки лимита и пересечений выполняются в сериализуемой транзакции с
// блокировкой строк стола (FOR UPDATE); на случай гонки двух вставок схема
// дополнительно несёт exclusion constraint на окно бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: table=%d, date=%s, time=%s, duration=%dh",
		req.TableID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours)

	// 1. Валидация входных данных (имя, телефон, слот, длительность)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем существование стола
	table, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("CreateBooking: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("CreateBooking: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	if !table.IsBookable() {
		uc.logger.Warn("CreateBooking: table id=%d is not bookable, status=%s", req.TableID, table.Status)
		return nil, ErrTableNotAvailable
	}

	customerName := strings.TrimSpace(req.CustomerName)
	customerPhone := domain.NormalizePhone(req.CustomerPhone)

	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Настройки читаются заново внутри транзакции: актуальные часы
		// работы и цены на момент создания
		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		// 5.2. Время начала должно лежать на сетке слотов рабочего дня
		grid, err := timegrid.SlotMinutes(
			settings.OpenTime.String(),
			settings.CloseTime.String(),
			domain.SlotIntervalMinutes,
		)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to build slot grid: %v", err)
			return fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
		}

		startMin, err := resolveStartMinutes(req.StartTime.String(), grid)
		if err != nil {
			uc.logger.Warn("CreateBooking: start time %s is not on the grid", req.StartTime)
			return err
		}

		// Окно хранится в wall-clock представлении: начало в [0, 1440),
		// конец может превышать 1440 при переходе через полночь
		startMin %= minutesPerDay
		endMin := startMin + req.DurationHours*60

		// 5.3. Дневной лимит бронирований на телефон
		count, err := uc.bookingRepo.CountByPhoneAndDate(txCtx, customerPhone, req.Date, domain.ActiveStatuses)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count bookings by phone: %v", err)
			return fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}
		if count >= domain.MaxBookingsPerPhonePerDay {
			uc.logger.Warn("CreateBooking: rate limit exceeded for phone, %d bookings on %s",
				count, req.Date.Format(domain.DateFormat))
			return ErrRateLimitExceeded
		}

		// 5.4. Получаем активные бронирования стола с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByTableAndDate(txCtx, req.TableID, req.Date, domain.ActiveStatuses)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.5. Проверяем пересечение запрошенного окна с существующими
		for _, b := range bookings {
			bStart, bEnd, err := b.Window()
			if err != nil {
				continue
			}
			if timegrid.Overlaps(startMin, endMin, bStart, bEnd) {
				uc.logger.Warn("CreateBooking: slot %s conflicts with booking id=%d", req.StartTime, b.ID)
				return ErrSlotConflict
			}
		}

		// 5.6. Стоимость фиксируется на момент создания
		totalPrice := settings.HourlyRate(table.Type) * float64(req.DurationHours)

		booking := &domain.Booking{
			TableID:       req.TableID,
			CustomerName:  customerName,
			CustomerPhone: customerPhone,
			Date:          req.Date,
			StartTime:     types.TimeString(timegrid.FromMinutes(startMin)),
			EndTime:       types.TimeString(timegrid.FromMinutes(endMin)),
			Status:        domain.StatusPending,
			TotalPrice:    totalPrice,
			SlipURL:       req.SlipURL,
		}

		// 5.7. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateBooking: slot %s lost the race for table id=%d", req.StartTime, req.TableID)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Уведомление best-effort: сбой не влияет на результат операции
	if err := uc.notifier.Send(ctx, notifier.Event{
		Type:      notifier.EventBookingCreated,
		BookingID: result.ID,
		TableID:   result.TableID,
		Status:    string(result.Status),
		Date:      result.Date.Format(domain.DateFormat),
		StartTime: result.StartTime.String(),
	}); err != nil {
		uc.logger.Warn("CreateBooking: failed to notify booking id=%d: %v", result.ID, err)
	}

	return &Response{
		ID:            result.ID,
		TableID:       result.TableID,
		TableName:     &table.Name,
		CustomerName:  result.CustomerName,
		CustomerPhone: result.CustomerPhone,
		Date:          result.Date,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Status:        string(result.Status),
		TotalPrice:    result.TotalPrice,
		SlipURL:       result.SlipURL,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

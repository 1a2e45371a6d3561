package reconciler

import (
	"context"
	"time"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/internal/integrations/notifier"
	"github.com/m04kA/SNK-BookingService/pkg/timegrid"
)

// writeTimeout лимит на фоновую корректирующую запись
const writeTimeout = 10 * time.Second

// Service сверяет сохраненное состояние с реальным временем:
// переводит просроченные pending-бронирования в no_show и освобождает столы,
// помеченные occupied без активного подтвержденного бронирования.
//
// Вызывается при каждом чтении списка столов. Корректировки применяются к
// переданному в память snapshot синхронно (вызывающий сразу видит исправленное
// состояние), а записи в хранилище уходят в фоне и не блокируют чтение.
// Ошибки фоновых записей логируются и не возвращаются: сверка - это
// best-effort фоновая коррекция, а не действие пользователя.
// Повторный прогон по уже исправленному состоянию ничего не меняет.
type Service struct {
	bookingRepo BookingRepository
	tableRepo   TableRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса сверки
func NewService(
	bookingRepo BookingRepository,
	tableRepo TableRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		tableRepo:   tableRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Run выполняет обе фазы сверки над snapshot сегодняшнего состояния.
// todayBookings - бронирования на сегодняшнюю дату (любых статусов),
// now - текущее локальное время.
func (s *Service) Run(
	tables []*domain.Table,
	todayBookings []*domain.Booking,
	settings *domain.ShopSettings,
	now time.Time,
) {
	nowMinutes := now.Hour()*60 + now.Minute()

	s.sweepNoShows(todayBookings, settings.LateThreshold(), nowMinutes)
	s.sweepStaleOccupied(tables, todayBookings, nowMinutes)
}

// sweepNoShows переводит pending-бронирования, чье время начала прошло больше
// чем на lateThreshold минут, в статус no_show
func (s *Service) sweepNoShows(bookings []*domain.Booking, lateThreshold int, nowMinutes int) {
	for _, b := range bookings {
		if b.Status != domain.StatusPending {
			continue
		}

		startMin, err := timegrid.ToMinutes(b.StartTime.String())
		if err != nil {
			s.logger.Warn("Reconcile: booking id=%d has unparseable start_time=%q, skipping", b.ID, b.StartTime)
			continue
		}

		if nowMinutes-startMin <= lateThreshold {
			continue
		}

		// Синхронная локальная коррекция: вызывающий видит no_show сразу,
		// не дожидаясь записи
		b.Status = domain.StatusNoShow
		s.logger.Info("Reconcile: booking id=%d start=%s is past late threshold (%d min), marking no_show",
			b.ID, b.StartTime, lateThreshold)

		s.writeBookingStatus(b.ID, domain.StatusNoShow)
	}
}

// sweepStaleOccupied освобождает столы со статусом occupied, у которых нет
// подтвержденного бронирования, покрывающего текущий момент
func (s *Service) sweepStaleOccupied(tables []*domain.Table, bookings []*domain.Booking, nowMinutes int) {
	for _, t := range tables {
		if t.Status != domain.TableOccupied {
			continue
		}

		if hasActiveConfirmedBooking(t.ID, bookings, nowMinutes) {
			continue
		}

		t.Status = domain.TableAvailable
		s.logger.Info("Reconcile: table id=%d marked occupied with no active booking, releasing", t.ID)

		s.writeTableStatus(t.ID, domain.TableAvailable)
	}
}

// hasActiveConfirmedBooking проверяет, что у стола есть подтвержденное
// бронирование, чье окно [start, end) покрывает текущий момент
func hasActiveConfirmedBooking(tableID int64, bookings []*domain.Booking, nowMinutes int) bool {
	for _, b := range bookings {
		if b.TableID != tableID || b.Status != domain.StatusConfirmed {
			continue
		}

		startMin, endMin, err := b.Window()
		if err != nil {
			continue
		}

		if timegrid.Covers(nowMinutes, startMin, endMin) {
			return true
		}
	}
	return false
}

// writeBookingStatus отправляет корректирующую запись статуса бронирования
// в фоне. Запись не привязана к контексту запроса: уход вызывающего не
// отменяет коррекцию.
func (s *Service) writeBookingStatus(id int64, status domain.BookingStatus) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
			s.logger.Error("Reconcile: failed to persist booking id=%d status=%s: %v", id, status, err)
			return
		}

		if err := s.notifier.Send(ctx, notifier.Event{
			Type:      notifier.EventBookingStatusChanged,
			BookingID: id,
			Status:    string(status),
		}); err != nil {
			s.logger.Warn("Reconcile: failed to notify booking id=%d status=%s: %v", id, status, err)
		}
	}()
}

// writeTableStatus отправляет корректирующую запись статуса стола в фоне
func (s *Service) writeTableStatus(id int64, status domain.TableStatus) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := s.tableRepo.UpdateStatus(ctx, id, status); err != nil {
			s.logger.Error("Reconcile: failed to persist table id=%d status=%s: %v", id, status, err)
			return
		}

		if err := s.notifier.Send(ctx, notifier.Event{
			Type:    notifier.EventTableStatusChanged,
			TableID: id,
			Status:  string(status),
		}); err != nil {
			s.logger.Warn("Reconcile: failed to notify table id=%d status=%s: %v", id, status, err)
		}
	}()
}

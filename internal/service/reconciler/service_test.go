package reconciler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/internal/integrations/notifier"
)

type bookingWrite struct {
	id     int64
	status domain.BookingStatus
}

type fakeBookingRepo struct {
	writes chan bookingWrite
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.writes <- bookingWrite{id: id, status: status}
	return nil
}

type tableWrite struct {
	id     int64
	status domain.TableStatus
}

type fakeTableRepo struct {
	writes chan tableWrite
}

func (f *fakeTableRepo) UpdateStatus(_ context.Context, id int64, status domain.TableStatus) error {
	f.writes <- tableWrite{id: id, status: status}
	return nil
}

type fakeNotifier struct {
	events chan notifier.Event
}

func (f *fakeNotifier) Send(_ context.Context, event notifier.Event) error {
	f.events <- event
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type env struct {
	svc         *Service
	bookingRepo *fakeBookingRepo
	tableRepo   *fakeTableRepo
	notifier    *fakeNotifier
}

func newEnv(t *testing.T) *env {
	t.Helper()

	bRepo := &fakeBookingRepo{writes: make(chan bookingWrite, 16)}
	tRepo := &fakeTableRepo{writes: make(chan tableWrite, 16)}
	ntf := &fakeNotifier{events: make(chan notifier.Event, 16)}

	return &env{
		svc:         NewService(bRepo, tRepo, ntf, nopLogger{}),
		bookingRepo: bRepo,
		tableRepo:   tRepo,
		notifier:    ntf,
	}
}

func settingsWithThreshold(minutes int) *domain.ShopSettings {
	return &domain.ShopSettings{
		ID:                   1,
		OpenTime:             "10:00",
		CloseTime:            "02:00",
		LateThresholdMinutes: minutes,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 10, hour, minute, 0, 0, time.UTC)
}

func awaitBookingWrite(t *testing.T, e *env) bookingWrite {
	t.Helper()
	select {
	case w := <-e.bookingRepo.writes:
		return w
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for booking status write")
		return bookingWrite{}
	}
}

func awaitTableWrite(t *testing.T, e *env) tableWrite {
	t.Helper()
	select {
	case w := <-e.tableRepo.writes:
		return w
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for table status write")
		return tableWrite{}
	}
}

// Порог 10 минут: в 09:11 опоздание (11 минут) превышает порог и pending
// уходит в no_show
func TestRun_NoShowPastThreshold(t *testing.T) {
	e := newEnv(t)

	booking := &domain.Booking{ID: 1, TableID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusPending}

	e.svc.Run(nil, []*domain.Booking{booking}, settingsWithThreshold(10), at(9, 11))

	// Snapshot корректируется синхронно
	assert.Equal(t, domain.StatusNoShow, booking.Status)

	// Корректирующая запись уходит в фоне
	w := awaitBookingWrite(t, e)
	assert.Equal(t, int64(1), w.id)
	assert.Equal(t, domain.StatusNoShow, w.status)

	select {
	case ev := <-e.notifier.events:
		assert.Equal(t, notifier.EventBookingStatusChanged, ev.Type)
		assert.Equal(t, int64(1), ev.BookingID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

// В 09:09 опоздание ровно на границе порога еще прощается
func TestRun_NoShowWithinThreshold(t *testing.T) {
	e := newEnv(t)

	booking := &domain.Booking{ID: 1, TableID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusPending}

	e.svc.Run(nil, []*domain.Booking{booking}, settingsWithThreshold(10), at(9, 9))
	assert.Equal(t, domain.StatusPending, booking.Status)

	// Ровно на пороге (09:10) тоже еще не no_show
	e.svc.Run(nil, []*domain.Booking{booking}, settingsWithThreshold(10), at(9, 10))
	assert.Equal(t, domain.StatusPending, booking.Status)

	assert.Empty(t, e.bookingRepo.writes)
}

func TestRun_ConfirmedNotSweptAsNoShow(t *testing.T) {
	e := newEnv(t)

	booking := &domain.Booking{ID: 1, TableID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed}

	e.svc.Run(nil, []*domain.Booking{booking}, settingsWithThreshold(10), at(9, 30))
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Empty(t, e.bookingRepo.writes)
}

// Нулевой порог в настройках заменяется дефолтным
func TestRun_DefaultThresholdFallback(t *testing.T) {
	e := newEnv(t)

	booking := &domain.Booking{ID: 1, TableID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusPending}

	// 5 минут опоздания меньше дефолтных 10
	e.svc.Run(nil, []*domain.Booking{booking}, settingsWithThreshold(0), at(9, 5))
	assert.Equal(t, domain.StatusPending, booking.Status)

	e.svc.Run(nil, []*domain.Booking{booking}, settingsWithThreshold(0), at(9, 15))
	assert.Equal(t, domain.StatusNoShow, booking.Status)
}

func TestRun_StaleOccupiedReleased(t *testing.T) {
	e := newEnv(t)

	table := &domain.Table{ID: 3, Name: "Стол 3", Type: domain.TableStandard, Status: domain.TableOccupied}

	e.svc.Run([]*domain.Table{table}, nil, settingsWithThreshold(10), at(12, 0))

	assert.Equal(t, domain.TableAvailable, table.Status)

	w := awaitTableWrite(t, e)
	assert.Equal(t, int64(3), w.id)
	assert.Equal(t, domain.TableAvailable, w.status)
}

func TestRun_OccupiedWithActiveConfirmedKept(t *testing.T) {
	e := newEnv(t)

	table := &domain.Table{ID: 3, Name: "Стол 3", Type: domain.TableStandard, Status: domain.TableOccupied}
	booking := &domain.Booking{ID: 1, TableID: 3, StartTime: "11:00", EndTime: "13:00", Status: domain.StatusConfirmed}

	e.svc.Run([]*domain.Table{table}, []*domain.Booking{booking}, settingsWithThreshold(10), at(12, 0))

	assert.Equal(t, domain.TableOccupied, table.Status)
	assert.Empty(t, e.tableRepo.writes)
}

// Confirmed-бронирование другого стола не удерживает occupied
func TestRun_OtherTableBookingDoesNotHold(t *testing.T) {
	e := newEnv(t)

	table := &domain.Table{ID: 3, Name: "Стол 3", Type: domain.TableStandard, Status: domain.TableOccupied}
	booking := &domain.Booking{ID: 1, TableID: 4, StartTime: "11:00", EndTime: "13:00", Status: domain.StatusConfirmed}

	e.svc.Run([]*domain.Table{table}, []*domain.Booking{booking}, settingsWithThreshold(10), at(12, 0))
	assert.Equal(t, domain.TableAvailable, table.Status)
}

func TestRun_MaintenanceNotTouched(t *testing.T) {
	e := newEnv(t)

	table := &domain.Table{ID: 3, Name: "Стол 3", Type: domain.TableStandard, Status: domain.TableMaintenance}

	e.svc.Run([]*domain.Table{table}, nil, settingsWithThreshold(10), at(12, 0))
	assert.Equal(t, domain.TableMaintenance, table.Status)
	assert.Empty(t, e.tableRepo.writes)
}

// Повторный прогон по уже исправленному состоянию ничего не меняет
func TestRun_Idempotent(t *testing.T) {
	e := newEnv(t)

	booking := &domain.Booking{ID: 1, TableID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusPending}
	table := &domain.Table{ID: 3, Name: "Стол 3", Type: domain.TableStandard, Status: domain.TableOccupied}

	e.svc.Run([]*domain.Table{table}, []*domain.Booking{booking}, settingsWithThreshold(10), at(9, 30))
	awaitBookingWrite(t, e)
	awaitTableWrite(t, e)

	require.Equal(t, domain.StatusNoShow, booking.Status)
	require.Equal(t, domain.TableAvailable, table.Status)

	e.svc.Run([]*domain.Table{table}, []*domain.Booking{booking}, settingsWithThreshold(10), at(9, 31))

	assert.Empty(t, e.bookingRepo.writes)
	assert.Empty(t, e.tableRepo.writes)
}

// Ночное окно, переходящее через полночь, покрывает момент после полуночи
func TestRun_OvernightWindowHoldsTable(t *testing.T) {
	e := newEnv(t)

	table := &domain.Table{ID: 3, Name: "Стол 3", Type: domain.TableStandard, Status: domain.TableOccupied}
	booking := &domain.Booking{ID: 1, TableID: 3, StartTime: "23:00", EndTime: "01:00", Status: domain.StatusConfirmed}

	e.svc.Run([]*domain.Table{table}, []*domain.Booking{booking}, settingsWithThreshold(10), at(23, 30))
	assert.Equal(t, domain.TableOccupied, table.Status)
}

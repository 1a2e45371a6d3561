package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SNK-BookingService/internal/infra/storage/booking"
	tableRepo "github.com/m04kA/SNK-BookingService/internal/infra/storage/table"
	"github.com/m04kA/SNK-BookingService/internal/integrations/notifier"
	"github.com/m04kA/SNK-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	existing     []*domain.Booking
	countByDate  map[string]int
	createErr    error
	created      *domain.Booking
	lockStatuses []domain.BookingStatus
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *b
	created.ID = 101
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByTableAndDate(_ context.Context, _ int64, _ time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	f.lockStatuses = statuses
	return f.existing, nil
}

func (f *fakeBookingRepo) CountByPhoneAndDate(_ context.Context, _ string, date time.Time, _ []domain.BookingStatus) (int, error) {
	return f.countByDate[date.Format(domain.DateFormat)], nil
}

type fakeTableRepo struct {
	table *domain.Table
	err   error
}

func (f *fakeTableRepo) GetByID(_ context.Context, _ int64) (*domain.Table, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.table, nil
}

type fakeSettingsRepo struct {
	settings *domain.ShopSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.ShopSettings, error) {
	return f.settings, nil
}

type fakeNotifier struct {
	events []notifier.Event
}

func (f *fakeNotifier) Send(_ context.Context, event notifier.Event) error {
	f.events = append(f.events, event)
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultSettings() *domain.ShopSettings {
	return &domain.ShopSettings{
		ID:                   1,
		OpenTime:             "10:00",
		CloseTime:            "02:00",
		StandardPrice:        300,
		VIPPrice:             500,
		LateThresholdMinutes: 10,
	}
}

type env struct {
	uc          *UseCase
	bookingRepo *fakeBookingRepo
	tableRepo   *fakeTableRepo
	notifier    *fakeNotifier
	now         time.Time
}

func newEnv(t *testing.T) *env {
	t.Helper()

	bRepo := &fakeBookingRepo{countByDate: map[string]int{}}
	tRepo := &fakeTableRepo{table: &domain.Table{
		ID:     1,
		Name:   "Стол 1",
		Type:   domain.TableStandard,
		Status: domain.TableAvailable,
	}}
	ntf := &fakeNotifier{}

	uc := NewUseCase(bRepo, tRepo, &fakeSettingsRepo{settings: defaultSettings()}, ntf, &fakeTxManager{}, nopLogger{})

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	uc.SetTimeProvider(&fakeTimeProvider{now: now})

	return &env{uc: uc, bookingRepo: bRepo, tableRepo: tRepo, notifier: ntf, now: now}
}

func validRequest(e *env) *Request {
	return &Request{
		TableID:       1,
		CustomerName:  "Иван",
		CustomerPhone: "089-123-4567",
		Date:          e.now.AddDate(0, 0, 1),
		StartTime:     "19:00",
		DurationHours: 2,
	}
}

func TestExecute_Success(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background(), validRequest(e))
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.TimeString("19:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("21:00"), resp.EndTime)
	// Телефон сохраняется нормализованным
	assert.Equal(t, "0891234567", resp.CustomerPhone)
	// Стоимость фиксируется по тарифу на момент создания
	assert.Equal(t, 600.0, resp.TotalPrice)

	require.Len(t, e.notifier.events, 1)
	assert.Equal(t, notifier.EventBookingCreated, e.notifier.events[0].Type)
}

func TestExecute_VIPRate(t *testing.T) {
	e := newEnv(t)
	e.tableRepo.table.Type = domain.TableVIP

	resp, err := e.uc.Execute(context.Background(), validRequest(e))
	require.NoError(t, err)
	assert.Equal(t, 1000.0, resp.TotalPrice)
}

func TestExecute_OvernightSlot(t *testing.T) {
	e := newEnv(t)
	req := validRequest(e)
	req.StartTime = "00:30"
	req.DurationHours = 1

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("00:30"), resp.StartTime)
	assert.Equal(t, types.TimeString("01:30"), resp.EndTime)
}

func TestExecute_SlotConflict(t *testing.T) {
	e := newEnv(t)
	e.bookingRepo.existing = []*domain.Booking{
		{ID: 7, TableID: 1, StartTime: "19:00", EndTime: "20:00", Status: domain.StatusConfirmed},
	}

	req := validRequest(e)
	req.StartTime = "18:00"
	req.DurationHours = 2 // 18:00-20:00 пересекается с 19:00-20:00

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, e.notifier.events)
}

func TestExecute_AdjacentWindowsDoNotConflict(t *testing.T) {
	e := newEnv(t)
	e.bookingRepo.existing = []*domain.Booking{
		{ID: 7, TableID: 1, StartTime: "18:00", EndTime: "19:00", Status: domain.StatusConfirmed},
	}

	// Окно начинается ровно в момент окончания существующего
	_, err := e.uc.Execute(context.Background(), validRequest(e))
	assert.NoError(t, err)
}

func TestExecute_ConflictLostRace(t *testing.T) {
	e := newEnv(t)
	e.bookingRepo.createErr = bookingRepo.ErrSlotConflict

	_, err := e.uc.Execute(context.Background(), validRequest(e))
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_RateLimit(t *testing.T) {
	e := newEnv(t)
	date := e.now.AddDate(0, 0, 1)
	e.bookingRepo.countByDate[date.Format(domain.DateFormat)] = domain.MaxBookingsPerPhonePerDay

	_, err := e.uc.Execute(context.Background(), validRequest(e))
	assert.ErrorIs(t, err, ErrRateLimitExceeded)

	// На другую дату лимит не действует
	req := validRequest(e)
	req.Date = e.now.AddDate(0, 0, 2)
	_, err = e.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_TableNotFound(t *testing.T) {
	e := newEnv(t)
	e.tableRepo.err = tableRepo.ErrTableNotFound

	_, err := e.uc.Execute(context.Background(), validRequest(e))
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_TableUnderMaintenance(t *testing.T) {
	e := newEnv(t)
	e.tableRepo.table.Status = domain.TableMaintenance

	_, err := e.uc.Execute(context.Background(), validRequest(e))
	assert.ErrorIs(t, err, ErrTableNotAvailable)
}

func TestExecute_PastDate(t *testing.T) {
	e := newEnv(t)
	req := validRequest(e)
	req.Date = e.now.AddDate(0, 0, -1)

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ValidationOrder(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name     string
		mutate   func(r *Request)
		expected error
	}{
		{
			name:     "короткое имя",
			mutate:   func(r *Request) { r.CustomerName = " a " },
			expected: ErrNameTooShort,
		},
		{
			name:     "телефон слишком короткий",
			mutate:   func(r *Request) { r.CustomerPhone = "12345678" },
			expected: ErrInvalidPhone,
		},
		{
			name:     "телефон слишком длинный",
			mutate:   func(r *Request) { r.CustomerPhone = "12345678901" },
			expected: ErrInvalidPhone,
		},
		{
			name:     "слот не выбран",
			mutate:   func(r *Request) { r.StartTime = "" },
			expected: ErrSlotNotSelected,
		},
		{
			name:     "длительность ниже минимума",
			mutate:   func(r *Request) { r.DurationHours = 0 },
			expected: ErrInvalidDuration,
		},
		{
			name:     "длительность выше максимума",
			mutate:   func(r *Request) { r.DurationHours = 6 },
			expected: ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(e)
			tt.mutate(req)
			_, err := e.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	// Имя проверяется раньше телефона при нескольких нарушениях
	req := validRequest(e)
	req.CustomerName = "a"
	req.CustomerPhone = "123"
	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNameTooShort)
}

func TestExecute_SlotNotOnGrid(t *testing.T) {
	e := newEnv(t)
	req := validRequest(e)
	req.StartTime = "19:15"

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotOnGrid)

	// Слот вне рабочего дня тоже не на сетке
	req = validRequest(e)
	req.StartTime = "05:00"
	_, err = e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotOnGrid)
}

func TestExecute_LocksActiveStatuses(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), validRequest(e))
	require.NoError(t, err)

	// Пересечения проверяются только с активными бронированиями
	assert.Equal(t, domain.ActiveStatuses, e.bookingRepo.lockStatuses)
}

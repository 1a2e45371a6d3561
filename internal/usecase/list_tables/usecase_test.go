package list_tables

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/pkg/types"
)

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) List(_ context.Context) ([]*domain.Table, error) {
	return f.tables, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	filter   domain.BookingsFilter
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	return f.bookings, nil
}

type fakeSettingsRepo struct {
	settings *domain.ShopSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.ShopSettings, error) {
	return f.settings, nil
}

type fakeReconciler struct {
	calls int
	now   time.Time
}

func (f *fakeReconciler) Run(_ []*domain.Table, _ []*domain.Booking, _ *domain.ShopSettings, now time.Time) {
	f.calls++
	f.now = now
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

type env struct {
	uc          *UseCase
	tableRepo   *fakeTableRepo
	bookingRepo *fakeBookingRepo
	reconciler  *fakeReconciler
	now         time.Time
}

func newEnv(t *testing.T) *env {
	t.Helper()

	tRepo := &fakeTableRepo{tables: []*domain.Table{
		{ID: 1, Name: "Стол 1", Type: domain.TableStandard, Status: domain.TableAvailable},
		{ID: 2, Name: "VIP 1", Type: domain.TableVIP, Status: domain.TableOccupied},
	}}
	bRepo := &fakeBookingRepo{}
	sRepo := &fakeSettingsRepo{settings: &domain.ShopSettings{
		ID:            1,
		OpenTime:      "10:00",
		CloseTime:     "02:00",
		StandardPrice: 300,
		VIPPrice:      500,
	}}
	rec := &fakeReconciler{}

	uc := NewUseCase(tRepo, bRepo, sRepo, rec, nopLogger{})
	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	uc.SetTimeProvider(&fakeTimeProvider{now: now})

	return &env{uc: uc, tableRepo: tRepo, bookingRepo: bRepo, reconciler: rec, now: now}
}

func TestExecute_DerivedFields(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Tables, 2)

	assert.Equal(t, "Стол 1", resp.Tables[0].Name)
	assert.Equal(t, 300.0, resp.Tables[0].PricePerHour)
	assert.Equal(t, 500.0, resp.Tables[1].PricePerHour)

	// Без бронирований превью - ближайшие 4 слота строго позже 14:30
	expected := []types.TimeString{"15:00", "15:30", "16:00", "16:30"}
	assert.Equal(t, expected, resp.Tables[0].AvailableSlots)
	assert.Nil(t, resp.Tables[0].OccupiedUntil)
}

func TestExecute_PreviewSkipsOccupied(t *testing.T) {
	e := newEnv(t)
	e.bookingRepo.bookings = []*domain.Booking{
		{ID: 5, TableID: 1, StartTime: "15:00", EndTime: "16:00", Status: domain.StatusPending},
	}

	resp, err := e.uc.Execute(context.Background())
	require.NoError(t, err)

	expected := []types.TimeString{"16:00", "16:30", "17:00", "17:30"}
	assert.Equal(t, expected, resp.Tables[0].AvailableSlots)
}

func TestExecute_OccupiedUntil(t *testing.T) {
	e := newEnv(t)
	e.bookingRepo.bookings = []*domain.Booking{
		{ID: 5, TableID: 2, StartTime: "14:00", EndTime: "15:00", Status: domain.StatusConfirmed},
	}

	resp, err := e.uc.Execute(context.Background())
	require.NoError(t, err)

	require.NotNil(t, resp.Tables[1].OccupiedUntil)
	assert.Equal(t, types.TimeString("15:00"), *resp.Tables[1].OccupiedUntil)

	// Соседний стол не затронут
	assert.Nil(t, resp.Tables[0].OccupiedUntil)
}

// Pending-бронирование занимает слот, но не выставляет occupiedUntil
func TestExecute_PendingDoesNotSetOccupiedUntil(t *testing.T) {
	e := newEnv(t)
	e.bookingRepo.bookings = []*domain.Booking{
		{ID: 5, TableID: 1, StartTime: "14:00", EndTime: "15:00", Status: domain.StatusPending},
	}

	resp, err := e.uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Nil(t, resp.Tables[0].OccupiedUntil)
}

func TestExecute_CancelledDoesNotOccupy(t *testing.T) {
	e := newEnv(t)
	e.bookingRepo.bookings = []*domain.Booking{
		{ID: 5, TableID: 1, StartTime: "15:00", EndTime: "16:00", Status: domain.StatusCancelled},
	}

	resp, err := e.uc.Execute(context.Background())
	require.NoError(t, err)

	expected := []types.TimeString{"15:00", "15:30", "16:00", "16:30"}
	assert.Equal(t, expected, resp.Tables[0].AvailableSlots)
}

func TestExecute_RunsReconciler(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, e.reconciler.calls)
	assert.Equal(t, e.now, e.reconciler.now)
}

func TestExecute_FetchesTodayBookings(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background())
	require.NoError(t, err)

	require.NotNil(t, e.bookingRepo.filter.Date)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), *e.bookingRepo.filter.Date)
}

func TestExecute_PreviewCap(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Tables[0].AvailableSlots, domain.AvailableSlotsPreview)
}

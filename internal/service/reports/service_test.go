package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SNK-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	filter   domain.BookingsFilter
}

// GetByDateRange повторяет контракт хранилища: фильтр по закрытому интервалу
// дат и набору статусов
func (f *fakeBookingRepo) GetByDateRange(_ context.Context, from, to time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.Date.Before(from) || b.Date.After(to) {
			continue
		}
		if statuses != nil && !containsStatus(statuses, b.Status) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	if filter.Limit > 0 && uint64(len(f.bookings)) > filter.Limit {
		return f.bookings[:filter.Limit], nil
	}
	return f.bookings, nil
}

func containsStatus(statuses []domain.BookingStatus, s domain.BookingStatus) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) List(_ context.Context) ([]*domain.Table, error) {
	return f.tables, nil
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

func day(dayOfMonth int) time.Time {
	return time.Date(2025, 6, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func booking(id int64, date time.Time, status domain.BookingStatus, price float64) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		TableID:    1,
		Date:       date,
		StartTime:  "19:00",
		EndTime:    "21:00",
		Status:     status,
		TotalPrice: price,
	}
}

func newService(bookings []*domain.Booking, tables []*domain.Table) (*Service, *fakeBookingRepo) {
	bRepo := &fakeBookingRepo{bookings: bookings}
	svc := NewService(bRepo, &fakeTableRepo{tables: tables}, nopLogger{})
	return svc, bRepo
}

// Два confirmed-бронирования в один день суммируются, cancelled на другой
// день не попадает в отчет вовсе - пустые дни опускаются
func TestRevenueByDay(t *testing.T) {
	svc, _ := newService([]*domain.Booking{
		booking(1, day(1), domain.StatusConfirmed, 500),
		booking(2, day(1), domain.StatusConfirmed, 300),
		booking(3, day(2), domain.StatusCancelled, 400),
	}, nil)

	report, err := svc.RevenueByDay(context.Background(), day(1), day(2))
	require.NoError(t, err)

	require.Len(t, report.Days, 1)
	assert.Equal(t, "2025-06-01", report.Days[0].Date)
	assert.Equal(t, 800.0, report.Days[0].Revenue)
	assert.Equal(t, 2, report.Days[0].BookingCount)
	assert.Equal(t, "2025-06-01", report.From)
	assert.Equal(t, "2025-06-02", report.To)
}

func TestRevenueByDay_CompletedCounted(t *testing.T) {
	svc, _ := newService([]*domain.Booking{
		booking(1, day(1), domain.StatusCompleted, 500),
		booking(2, day(1), domain.StatusNoShow, 300),
		booking(3, day(1), domain.StatusPending, 200),
	}, nil)

	report, err := svc.RevenueByDay(context.Background(), day(1), day(1))
	require.NoError(t, err)

	require.Len(t, report.Days, 1)
	assert.Equal(t, 500.0, report.Days[0].Revenue)
	assert.Equal(t, 1, report.Days[0].BookingCount)
}

func TestRevenueByDay_SortedAscending(t *testing.T) {
	svc, _ := newService([]*domain.Booking{
		booking(1, day(3), domain.StatusConfirmed, 100),
		booking(2, day(1), domain.StatusConfirmed, 200),
		booking(3, day(2), domain.StatusConfirmed, 300),
	}, nil)

	report, err := svc.RevenueByDay(context.Background(), day(1), day(3))
	require.NoError(t, err)

	require.Len(t, report.Days, 3)
	assert.Equal(t, "2025-06-01", report.Days[0].Date)
	assert.Equal(t, "2025-06-02", report.Days[1].Date)
	assert.Equal(t, "2025-06-03", report.Days[2].Date)
}

func TestRevenueByDay_InvalidRange(t *testing.T) {
	svc, _ := newService(nil, nil)

	_, err := svc.RevenueByDay(context.Background(), day(2), day(1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUsageByTable(t *testing.T) {
	vipName := "VIP 1"
	standardName := "Стол 1"

	b1 := booking(1, day(1), domain.StatusConfirmed, 600)
	b1.TableName = &standardName
	b2 := booking(2, day(1), domain.StatusCompleted, 300)
	b2.TableName = &standardName
	b3 := booking(3, day(1), domain.StatusConfirmed, 1000)
	b3.TableID = 2
	b3.TableName = &vipName

	svc, _ := newService([]*domain.Booking{b1, b2, b3}, nil)

	report, err := svc.UsageByTable(context.Background(), day(1), day(1))
	require.NoError(t, err)

	require.Len(t, report.Tables, 2)
	// Сортировка по выручке: VIP первым
	assert.Equal(t, int64(2), report.Tables[0].TableID)
	assert.Equal(t, "VIP 1", report.Tables[0].TableName)
	assert.Equal(t, 1000.0, report.Tables[0].Revenue)
	assert.Equal(t, 2.0, report.Tables[0].Hours)

	assert.Equal(t, int64(1), report.Tables[1].TableID)
	assert.Equal(t, 900.0, report.Tables[1].Revenue)
	assert.Equal(t, 4.0, report.Tables[1].Hours)
	assert.Equal(t, 2, report.Tables[1].BookingCount)
}

func TestPeakHours(t *testing.T) {
	b1 := booking(1, day(1), domain.StatusConfirmed, 100)
	b1.StartTime = "19:00"
	b2 := booking(2, day(1), domain.StatusConfirmed, 100)
	b2.StartTime = "19:30"
	b3 := booking(3, day(1), domain.StatusCompleted, 100)
	b3.StartTime = "00:30"

	svc, _ := newService([]*domain.Booking{b1, b2, b3}, nil)

	report, err := svc.PeakHours(context.Background(), day(1), day(1))
	require.NoError(t, err)

	// Все 24 часа присутствуют, включая нулевые
	require.Len(t, report.Hours, 24)
	for h, load := range report.Hours {
		assert.Equal(t, h, load.Hour)
	}

	assert.Equal(t, 2, report.Hours[19].BookingCount)
	assert.Equal(t, 1, report.Hours[0].BookingCount)
	assert.Equal(t, 0, report.Hours[12].BookingCount)
}

func TestDailySummary(t *testing.T) {
	svc, _ := newService([]*domain.Booking{
		booking(1, day(1), domain.StatusConfirmed, 500),
		booking(2, day(1), domain.StatusCompleted, 300),
		booking(3, day(1), domain.StatusPending, 200),
		booking(4, day(1), domain.StatusCancelled, 400),
		booking(5, day(1), domain.StatusNoShow, 100),
	}, nil)

	summary, err := svc.DailySummary(context.Background(), day(1))
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", summary.Date)
	assert.Equal(t, 5, summary.TotalBookings)
	assert.Equal(t, 2, summary.ConfirmedBookings)
	assert.Equal(t, 1, summary.PendingBookings)
	assert.Equal(t, 2, summary.CancelledBookings)
	// Выручка только с confirmed и completed
	assert.Equal(t, 800.0, summary.Revenue)
}

func TestDashboardStats(t *testing.T) {
	tables := []*domain.Table{
		{ID: 1, Status: domain.TableAvailable},
		{ID: 2, Status: domain.TableAvailable},
		{ID: 3, Status: domain.TableOccupied},
		{ID: 4, Status: domain.TableMaintenance},
	}

	svc, bRepo := newService([]*domain.Booking{
		booking(1, day(10), domain.StatusConfirmed, 500),
		booking(2, day(10), domain.StatusPending, 300),
	}, tables)
	svc.SetTimeProvider(&fakeTimeProvider{now: time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)})

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-06-10", stats.Today.Date)
	assert.Equal(t, 2, stats.Today.TotalBookings)
	assert.Equal(t, 500.0, stats.Today.Revenue)

	assert.Equal(t, 4, stats.TotalTables)
	assert.Equal(t, 2, stats.AvailableTables)
	assert.Equal(t, 1, stats.OccupiedTables)
	assert.Equal(t, 1, stats.MaintenanceTables)

	assert.Len(t, stats.RecentBookings, 2)
	// Последние бронирования запрашиваются свежими вперед с лимитом
	assert.True(t, bRepo.filter.NewestFirst)
	assert.Equal(t, uint64(recentBookingsLimit), bRepo.filter.Limit)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusNoShow, true},
		{StatusPending, StatusCompleted, false},

		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, false},
		{StatusConfirmed, StatusPending, false},

		// Из конечных статусов переходов нет
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.allowed, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingPredicates(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsActive())

	// Завершенные сессии продолжают занимать свое окно в течение дня
	assert.True(t, (&Booking{Status: StatusCompleted}).Occupies())
	assert.False(t, (&Booking{Status: StatusCancelled}).Occupies())
	assert.False(t, (&Booking{Status: StatusNoShow}).Occupies())

	assert.True(t, (&Booking{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCancelled}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusNoShow}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusPending}).IsTerminal())

	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
}

func TestBookingWindow(t *testing.T) {
	b := &Booking{StartTime: "19:00", EndTime: "21:00"}
	start, end, err := b.Window()
	require.NoError(t, err)
	assert.Equal(t, 1140, start)
	assert.Equal(t, 1260, end)

	// Окно через полночь нормализуется: конец сдвигается за 1440
	b = &Booking{StartTime: "23:30", EndTime: "01:00"}
	start, end, err = b.Window()
	require.NoError(t, err)
	assert.Equal(t, 1410, start)
	assert.Equal(t, 1500, end)

	b = &Booking{StartTime: "bad", EndTime: "21:00"}
	_, _, err = b.Window()
	assert.Error(t, err)
}

func TestDurationHours(t *testing.T) {
	b := &Booking{StartTime: "19:00", EndTime: "21:00"}
	hours, err := b.DurationHours()
	require.NoError(t, err)
	assert.Equal(t, 2.0, hours)

	b = &Booking{StartTime: "23:00", EndTime: "01:30"}
	hours, err = b.DurationHours()
	require.NoError(t, err)
	assert.Equal(t, 2.5, hours)
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "0891234567", NormalizePhone("089-123-4567"))
	assert.Equal(t, "0891234567", NormalizePhone("089 123 4567"))
	assert.Equal(t, "660123456", NormalizePhone("+66 (0) 12-3456"))
	assert.Equal(t, "", NormalizePhone("abc"))
}

func TestHourlyRate(t *testing.T) {
	s := &ShopSettings{StandardPrice: 300, VIPPrice: 500}
	assert.Equal(t, 300.0, s.HourlyRate(TableStandard))
	assert.Equal(t, 500.0, s.HourlyRate(TableVIP))
}

func TestLateThreshold(t *testing.T) {
	s := &ShopSettings{LateThresholdMinutes: 15}
	assert.Equal(t, 15, s.LateThreshold())

	// Неположительное значение заменяется дефолтом
	s = &ShopSettings{LateThresholdMinutes: 0}
	assert.Equal(t, DefaultLateThresholdMinutes, s.LateThreshold())
}

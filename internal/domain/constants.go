package domain

// Default configuration values
const (
	SlotIntervalMinutes         = 30
	DefaultLateThresholdMinutes = 10
)

// Business validation constants
const (
	MinCustomerNameLength = 2
	MinPhoneDigits        = 9
	MaxPhoneDigits        = 10

	// Per-phone daily cap on active bookings
	MaxBookingsPerPhonePerDay = 5

	// Booking duration bounds in hours
	MinBookingDurationHours = 1
	MaxBookingDurationHours = 5

	// Number of upcoming slots shown in the table-list preview
	AvailableSlotsPreview = 4
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, удерживающие слот (учитываются в rate limit
// и проверке пересечений при создании бронирования)
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// OccupyingStatuses статусы, блокирующие временное окно стола при расчёте
// доступных слотов (завершённые сессии в течение дня тоже занимали стол)
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// TerminalStatuses конечные статусы жизненного цикла
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// ValidBookingStatus проверяет допустимость статуса бронирования
func ValidBookingStatus(v BookingStatus) bool {
	switch v {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

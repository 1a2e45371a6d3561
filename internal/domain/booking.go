package domain

import (
	"time"

	"github.com/m04kA/SNK-BookingService/pkg/timegrid"
	"github.com/m04kA/SNK-BookingService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a table reservation in the system
type Booking struct {
	ID            int64
	TableID       int64
	CustomerName  string
	CustomerPhone string // digits only, dashes stripped before storage
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        BookingStatus

	// Frozen at creation: hourly rate at booking time multiplied by duration
	TotalPrice float64

	// Opaque reference to the uploaded payment slip, if any
	SlipURL *string

	// Denormalized for staff views (joined from tables)
	TableName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds a claim on its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Occupies returns true if the booking blocks its time window for availability
// purposes (completed sessions still occupied the table that day)
func (b *Booking) Occupies() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusCompleted
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled || b.Status == StatusNoShow
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo reports whether the lifecycle allows moving to target.
// No transition leaves a terminal state.
//
//	pending   -> confirmed | cancelled | no_show
//	confirmed -> completed | cancelled
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled || target == StatusNoShow
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	default:
		return false
	}
}

// Window returns the booking's half-open time window [start, end) in minutes
// since midnight, with the end normalized past 1440 for overnight spans
func (b *Booking) Window() (int, int, error) {
	start, err := timegrid.ToMinutes(b.StartTime.String())
	if err != nil {
		return 0, 0, err
	}

	end, err := timegrid.ToMinutes(b.EndTime.String())
	if err != nil {
		return 0, 0, err
	}

	start, end = timegrid.NormalizeSpan(start, end)
	return start, end, nil
}

// DurationHours returns the booked duration in hours (overnight-normalized)
func (b *Booking) DurationHours() (float64, error) {
	start, end, err := b.Window()
	if err != nil {
		return 0, err
	}
	return float64(end-start) / 60.0, nil
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Date      *time.Time      // Конкретная дата (опционально)
	TableID   *int64          // Фильтр по столу (опционально)
	Phone     *string         // Фильтр по нормализованному телефону (опционально)
	Statuses  []BookingStatus // Фильтр по набору статусов (опционально, nil - все)
	Limit     uint64          // Ограничение количества (0 - без ограничения)
	NewestFirst bool          // Сортировка по created_at DESC вместо даты/времени
}

package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/pkg/timegrid"
)

const minutesPerDay = 24 * 60

// validateRequest валидирует входные данные запроса.
// Порядок проверок фиксирован: имя, телефон, слот, длительность.
func validateRequest(req *Request) error {
	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 1. Имя клиента: минимум 2 символа после обрезки пробелов
	if len(strings.TrimSpace(req.CustomerName)) < domain.MinCustomerNameLength {
		return ErrNameTooShort
	}

	// 2. Телефон: после удаления разделителей остаётся 9-10 цифр
	digits := domain.NormalizePhone(req.CustomerPhone)
	if len(digits) < domain.MinPhoneDigits || len(digits) > domain.MaxPhoneDigits {
		return ErrInvalidPhone
	}

	// 3. Время начала выбрано и имеет корректный формат
	if req.StartTime.IsZero() {
		return ErrSlotNotSelected
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrSlotNotSelected, err)
	}

	// 4. Длительность в допустимых границах
	if req.DurationHours < domain.MinBookingDurationHours || req.DurationHours > domain.MaxBookingDurationHours {
		return fmt.Errorf("%w: duration must be between %d and %d hours",
			ErrInvalidDuration, domain.MinBookingDurationHours, domain.MaxBookingDurationHours)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// resolveStartMinutes проверяет, что время начала лежит на сетке слотов,
// и возвращает его в сырых минутах (для части сетки после полуночи значение
// превышает 1440)
func resolveStartMinutes(startTime string, grid []int) (int, error) {
	startMin, err := timegrid.ToMinutes(startTime)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSlotNotSelected, err)
	}

	for _, slotMin := range grid {
		if slotMin == startMin || slotMin == startMin+minutesPerDay {
			return slotMin, nil
		}
	}

	return 0, ErrSlotNotOnGrid
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

package get_available_slots

import (
	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/pkg/timegrid"
)

// bookedWindow нормализованное окно бронирования [start, end) в минутах от
// полуночи; end может превышать 1440 для бронирований через полночь
type bookedWindow struct {
	start int
	end   int
}

// collectWindows собирает окна занимающих бронирований, пропуская записи
// с нечитаемым временем
func collectWindows(bookings []*domain.Booking) []bookedWindow {
	windows := make([]bookedWindow, 0, len(bookings))
	for _, b := range bookings {
		start, end, err := b.Window()
		if err != nil {
			continue
		}
		windows = append(windows, bookedWindow{start: start, end: end})
	}
	return windows
}

// availableSlotMinutes строит сетку слотов и отбрасывает занятые.
// Слоты в сырых минутах: значения могут превышать 1440 для части сетки после
// полуночи. Если isToday, остаются только слоты строго позже nowMinutes.
func availableSlotMinutes(
	openTime, closeTime string,
	windows []bookedWindow,
	isToday bool,
	nowMinutes int,
) ([]int, error) {
	grid, err := timegrid.SlotMinutes(openTime, closeTime, domain.SlotIntervalMinutes)
	if err != nil {
		return nil, err
	}

	available := make([]int, 0, len(grid))
	for _, slotMin := range grid {
		if isToday && slotMin <= nowMinutes {
			continue
		}

		occupied := false
		for _, w := range windows {
			if timegrid.Covers(slotMin, w.start, w.end) {
				occupied = true
				break
			}
		}
		if occupied {
			continue
		}

		available = append(available, slotMin)
	}

	return available, nil
}

package list_tables

import (
	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/pkg/timegrid"
	"github.com/m04kA/SNK-BookingService/pkg/types"
)

// availableSlotsPreview строит превью ближайших свободных слотов стола на
// сегодня: слоты сетки строго позже nowMinutes, не занятые бронированиями
// в занимающих статусах, не больше domain.AvailableSlotsPreview штук
func availableSlotsPreview(
	grid []int,
	tableBookings []*domain.Booking,
	nowMinutes int,
) []types.TimeString {
	preview := make([]types.TimeString, 0, domain.AvailableSlotsPreview)

	for _, slotMin := range grid {
		if slotMin <= nowMinutes {
			continue
		}

		if slotOccupied(slotMin, tableBookings) {
			continue
		}

		preview = append(preview, types.TimeString(timegrid.FromMinutes(slotMin)))
		if len(preview) == domain.AvailableSlotsPreview {
			break
		}
	}

	return preview
}

// slotOccupied проверяет, попадает ли начало слота внутрь окна какого-либо
// занимающего бронирования
func slotOccupied(slotMin int, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.Occupies() {
			continue
		}

		start, end, err := b.Window()
		if err != nil {
			continue
		}

		if timegrid.Covers(slotMin, start, end) {
			return true
		}
	}
	return false
}

// occupiedUntil возвращает время окончания confirmed-бронирования,
// покрывающего текущий момент, если такое есть
func occupiedUntil(tableBookings []*domain.Booking, nowMinutes int) *types.TimeString {
	for _, b := range tableBookings {
		if b.Status != domain.StatusConfirmed {
			continue
		}

		start, end, err := b.Window()
		if err != nil {
			continue
		}

		if timegrid.Covers(nowMinutes, start, end) {
			until := types.TimeString(timegrid.FromMinutes(end))
			return &until
		}
	}
	return nil
}

package timegrid

import (
	"errors"
	"fmt"
)

// minutesPerDay количество минут в сутках
const minutesPerDay = 24 * 60

var (
	// ErrInvalidFormat возвращается при некорректном формате времени (ожидается HH:MM)
	ErrInvalidFormat = errors.New("timegrid: invalid time format")

	// ErrInvalidInterval возвращается при неположительном шаге сетки слотов
	ErrInvalidInterval = errors.New("timegrid: interval must be positive")
)

// ToMinutes конвертирует время "HH:MM" в минуты с начала суток
func ToMinutes(t string) (int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, t)
	}

	h, ok1 := parseTwoDigits(t[0], t[1])
	m, ok2 := parseTwoDigits(t[3], t[4])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, t)
	}

	return h*60 + m, nil
}

// FromMinutes конвертирует минуты с начала суток в строку "HH:MM".
// Значения за пределами суток заворачиваются по модулю 24 часов,
// чтобы слоты после полуночи отображались как время следующего дня.
func FromMinutes(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeSpan нормализует полуинтервал [start, end): если конец не позже
// начала, интервал считается переходящим через полночь и конец сдвигается
// на сутки вперед
func NormalizeSpan(startMin, endMin int) (int, int) {
	if endMin <= startMin {
		endMin += minutesPerDay
	}
	return startMin, endMin
}

// GenerateSlots генерирует упорядоченный список стартов слотов "HH:MM"
// от времени открытия до закрытия с шагом intervalMinutes.
// Последний слот начинается не позже close - interval (слот должен успеть
// закончиться до закрытия). Закрытие после полуночи поддерживается:
// для open="10:00", close="02:00" слоты идут с 10:00 по 01:30.
func GenerateSlots(openTime, closeTime string, intervalMinutes int) ([]string, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInterval, intervalMinutes)
	}

	openMin, err := ToMinutes(openTime)
	if err != nil {
		return nil, err
	}

	closeMin, err := ToMinutes(closeTime)
	if err != nil {
		return nil, err
	}

	_, closeMin = NormalizeSpan(openMin, closeMin)

	slots := make([]string, 0, (closeMin-openMin)/intervalMinutes)
	for cur := openMin; cur <= closeMin-intervalMinutes; cur += intervalMinutes {
		slots = append(slots, FromMinutes(cur))
	}

	return slots, nil
}

// SlotMinutes как GenerateSlots, но возвращает старты слотов в минутах
// без заворачивания по модулю суток (значения после полуночи > 1440).
// Используется для сравнения слотов с текущим временем и окнами бронирований.
func SlotMinutes(openTime, closeTime string, intervalMinutes int) ([]int, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInterval, intervalMinutes)
	}

	openMin, err := ToMinutes(openTime)
	if err != nil {
		return nil, err
	}

	closeMin, err := ToMinutes(closeTime)
	if err != nil {
		return nil, err
	}

	_, closeMin = NormalizeSpan(openMin, closeMin)

	slots := make([]int, 0, (closeMin-openMin)/intervalMinutes)
	for cur := openMin; cur <= closeMin-intervalMinutes; cur += intervalMinutes {
		slots = append(slots, cur)
	}

	return slots, nil
}

// Overlaps проверяет пересечение двух полуинтервалов [aStart, aEnd) и
// [bStart, bEnd) после нормализации. Интервалы, граничащие друг с другом
// (aEnd == bStart), НЕ пересекаются.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	aStart, aEnd = NormalizeSpan(aStart, aEnd)
	bStart, bEnd = NormalizeSpan(bStart, bEnd)
	return aStart < bEnd && aEnd > bStart
}

// Covers проверяет, что момент instant попадает в полуинтервал [start, end)
// после нормализации
func Covers(instant, start, end int) bool {
	start, end = NormalizeSpan(start, end)
	return instant >= start && instant < end
}

func parseTwoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

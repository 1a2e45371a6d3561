package timegrid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"00:00", 0},
		{"10:00", 600},
		{"19:30", 1170},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToMinutes(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToMinutes_Invalid(t *testing.T) {
	for _, input := range []string{"", "10", "10:0", "1000", "24:00", "10:60", "ab:cd", "10:30:00"} {
		t.Run(input, func(t *testing.T) {
			_, err := ToMinutes(input)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FromMinutes(0))
	assert.Equal(t, "19:30", FromMinutes(1170))
	// Значения за пределами суток сворачиваются в wall-clock представление
	assert.Equal(t, "01:30", FromMinutes(1530))
	assert.Equal(t, "00:00", FromMinutes(1440))
}

// Round-trip: ToMinutes и обратно воспроизводит исходную строку для всех
// корректных времен суток
func TestRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			s := fmt.Sprintf("%02d:%02d", h, m)
			minutes, err := ToMinutes(s)
			require.NoError(t, err)
			assert.Equal(t, s, FromMinutes(minutes))
		}
	}
}

func TestNormalizeSpan(t *testing.T) {
	start, end := NormalizeSpan(600, 660)
	assert.Equal(t, 600, start)
	assert.Equal(t, 660, end)

	// Окно через полночь: конец сдвигается на сутки
	start, end = NormalizeSpan(1380, 60)
	assert.Equal(t, 1380, start)
	assert.Equal(t, 1500, end)

	// Нулевая длительность трактуется как сутки
	start, end = NormalizeSpan(600, 600)
	assert.Equal(t, 600, start)
	assert.Equal(t, 2040, end)
}

func TestGenerateSlots_SameDay(t *testing.T) {
	slots, err := GenerateSlots("10:00", "12:00", 30)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, slots)
}

// Сетка через полночь 10:00-02:00 дает 32 слота от 10:00 до 01:30
func TestGenerateSlots_Overnight(t *testing.T) {
	slots, err := GenerateSlots("10:00", "02:00", 30)
	require.NoError(t, err)

	require.Len(t, slots, 32)
	assert.Equal(t, "10:00", slots[0])
	assert.Equal(t, "23:30", slots[27])
	assert.Equal(t, "00:00", slots[28])
	assert.Equal(t, "01:30", slots[31])

	// Каждый слот ровно в 30 минутах от предыдущего и ни один не достигает
	// нормализованного закрытия
	raw, err := SlotMinutes("10:00", "02:00", 30)
	require.NoError(t, err)
	require.Len(t, raw, 32)
	for i := 1; i < len(raw); i++ {
		assert.Equal(t, 30, raw[i]-raw[i-1])
	}
	closeMin := 26 * 60 // 02:00 следующего дня
	for _, m := range raw {
		assert.Less(t, m, closeMin)
	}
}

func TestGenerateSlots_InvalidInterval(t *testing.T) {
	_, err := GenerateSlots("10:00", "12:00", 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestOverlaps(t *testing.T) {
	// Граничащие окна не пересекаются (полуоткрытые интервалы)
	assert.False(t, Overlaps(600, 660, 660, 720))
	assert.False(t, Overlaps(660, 720, 600, 660))

	// Частичное наложение
	assert.True(t, Overlaps(600, 690, 660, 720))

	// Вложенное окно
	assert.True(t, Overlaps(600, 720, 630, 660))

	// Непересекающиеся окна
	assert.False(t, Overlaps(600, 660, 720, 780))
}

func TestOverlaps_Overnight(t *testing.T) {
	// 23:00-01:00 и 23:30-00:30 пересекаются после нормализации
	assert.True(t, Overlaps(1380, 60, 1410, 30))

	// 23:00-01:00 и 01:00-03:00 граничат
	assert.False(t, Overlaps(1380, 1500, 1500, 1620))
}

func TestCovers(t *testing.T) {
	// Начало окна принадлежит окну, конец - нет
	assert.True(t, Covers(600, 600, 660))
	assert.True(t, Covers(659, 600, 660))
	assert.False(t, Covers(660, 600, 660))
	assert.False(t, Covers(599, 600, 660))
}

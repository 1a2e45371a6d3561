package get_available_slots

import (
	"time"

	"github.com/m04kA/SNK-BookingService/pkg/types"
)

// Request модель запроса доступных слотов на стол и дату
type Request struct {
	TableID int64     // ID стола
	Date    time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа с полной сеткой доступных слотов
type Response struct {
	TableID      int64     // ID стола
	Date         time.Time // Дата, на которую запрашивались слоты
	PricePerHour float64   // Почасовая ставка для этого стола
	Slots        []Slot    // Доступные слоты в порядке возрастания
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
}

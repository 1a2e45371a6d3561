package list_tables

import (
	"github.com/m04kA/SNK-BookingService/pkg/types"
)

// Response модель ответа со списком столов и производными полями
type Response struct {
	Tables []TableView
}

// TableView представление стола для списка: хранимое состояние плюс
// производные поля, пересчитываемые при каждом чтении
type TableView struct {
	ID             int64
	Name           string
	Type           string
	Status         string
	PricePerHour   float64            // Почасовая ставка по типу стола и текущим настройкам
	AvailableSlots []types.TimeString // Ближайшие свободные слоты на сегодня (превью)
	OccupiedUntil  *types.TimeString  // Конец текущего confirmed-бронирования, если стол занят сейчас
}

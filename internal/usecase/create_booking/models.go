package create_booking

import (
	"time"

	"github.com/m04kA/SNK-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	TableID       int64            // ID стола
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон клиента (допускаются разделители, нормализуется)
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "19:30")
	DurationHours int              // Длительность в часах
	SlipURL       *string          // Ссылка на платежный слип (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64            // ID созданного бронирования
	TableID       int64            // ID стола
	TableName     *string          // Название стола (денормализация)
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Нормализованный телефон
	Date          time.Time        // Дата бронирования
	StartTime     types.TimeString // Время начала
	EndTime       types.TimeString // Время окончания
	Status        string           // Статус бронирования (pending)
	TotalPrice    float64          // Полная стоимость, зафиксирована при создании
	SlipURL       *string          // Ссылка на платежный слип

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

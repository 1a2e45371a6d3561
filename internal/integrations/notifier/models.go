package notifier

// Типы событий, отправляемых внешнему приёмнику уведомлений
const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventTableStatusChanged   = "table.status_changed"
)

// Event событие изменения состояния, доставляемое по webhook.
// Получатель (push-шлюз, бот, экран в зале) сам решает, что с ним делать;
// гарантий доставки нет.
type Event struct {
	Type      string `json:"type"`
	BookingID int64  `json:"bookingId,omitempty"`
	TableID   int64  `json:"tableId,omitempty"`
	Status    string `json:"status,omitempty"`
	Date      string `json:"date,omitempty"`
	StartTime string `json:"startTime,omitempty"`
}

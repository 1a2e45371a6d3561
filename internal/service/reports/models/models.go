package models

// DailyRevenue выручка и количество бронирований за один день
type DailyRevenue struct {
	Date         string  `json:"date"` // YYYY-MM-DD
	Revenue      float64 `json:"revenue"`
	BookingCount int     `json:"bookingCount"`
}

// RevenueReport выручка по дням за закрытый интервал [from, to]
type RevenueReport struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Days []*DailyRevenue `json:"days"`
}

// TableUsage загрузка одного стола за интервал
type TableUsage struct {
	TableID      int64   `json:"tableId"`
	TableName    string  `json:"tableName"`
	Hours        float64 `json:"hours"`
	Revenue      float64 `json:"revenue"`
	BookingCount int     `json:"bookingCount"`
}

// TableUsageReport загрузка столов, отсортирована по выручке (убывание)
type TableUsageReport struct {
	From   string        `json:"from"`
	To     string        `json:"to"`
	Tables []*TableUsage `json:"tables"`
}

// HourLoad количество бронирований, начинающихся в данный час
type HourLoad struct {
	Hour         int `json:"hour"` // 0..23
	BookingCount int `json:"bookingCount"`
}

// PeakHoursReport распределение бронирований по часам начала,
// всегда содержит все 24 часа
type PeakHoursReport struct {
	From  string      `json:"from"`
	To    string      `json:"to"`
	Hours []*HourLoad `json:"hours"`
}

// DailySummary сводка по одному дню
type DailySummary struct {
	Date              string  `json:"date"`
	TotalBookings     int     `json:"totalBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	Revenue           float64 `json:"revenue"`
}

// RecentBooking краткое представление бронирования для дашборда
type RecentBooking struct {
	ID           int64   `json:"id"`
	TableName    *string `json:"tableName,omitempty"`
	CustomerName string  `json:"customerName"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"totalPrice"`
}

// DashboardStats оперативная сводка: сегодняшний день, занятость столов,
// последние бронирования
type DashboardStats struct {
	Today             *DailySummary    `json:"today"`
	TotalTables       int              `json:"totalTables"`
	AvailableTables   int              `json:"availableTables"`
	OccupiedTables    int              `json:"occupiedTables"`
	MaintenanceTables int              `json:"maintenanceTables"`
	RecentBookings    []*RecentBooking `json:"recentBookings"`
}

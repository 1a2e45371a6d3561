package domain

import "time"

// TableType represents the category of a snooker table
type TableType string

const (
	TableStandard TableType = "standard"
	TableVIP      TableType = "vip"
)

// TableStatus represents the authoritative status of a snooker table
type TableStatus string

const (
	TableAvailable   TableStatus = "available"
	TableOccupied    TableStatus = "occupied"
	TableMaintenance TableStatus = "maintenance"
)

// Table represents a physical snooker table.
// The hourly rate is not stored per table: it is derived from the table type
// and the shop settings on every read. Occupancy and slot previews are derived
// fields as well and never persisted.
type Table struct {
	ID     int64
	Name   string
	Type   TableType
	Status TableStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if customers may book this table
func (t *Table) IsBookable() bool {
	return t.Status != TableMaintenance
}

// ValidTableType проверяет допустимость категории стола
func ValidTableType(v TableType) bool {
	return v == TableStandard || v == TableVIP
}

// ValidTableStatus проверяет допустимость статуса стола
func ValidTableStatus(v TableStatus) bool {
	return v == TableAvailable || v == TableOccupied || v == TableMaintenance
}

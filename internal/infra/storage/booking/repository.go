package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SNK-BookingService/pkg/psqlbuilder"
)

// exclusionViolationCode код ошибки Postgres при нарушении exclusion constraint (23P01)
const exclusionViolationCode = "23P01"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
//
// Помимо читаемых start_time/end_time сохраняются нормализованные минутные
// границы окна (end_min > start_min, для ночных броней end_min > 1440) —
// по ним работает exclusion constraint, страхующий от двойного бронирования.
// Нарушение constraint мапится в ErrSlotConflict.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	startMin, endMin, err := booking.Window()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - compute booking window: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"table_id",
			"customer_name",
			"customer_phone",
			"date",
			"start_time",
			"end_time",
			"start_min",
			"end_min",
			"status",
			"total_price",
			"slip_url",
		).
		Values(
			booking.TableID,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			startMin,
			endMin,
			booking.Status,
			booking.TotalPrice,
			booking.SlipURL,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == exclusionViolationCode {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID (с именем стола)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(joinedColumns()...).
		From("bookings b").
		LeftJoin("tables t ON t.id = b.table_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetWithFilter получает бронирования с гибкой фильтрацией
// (по дате, столу, нормализованному телефону и набору статусов).
// Для конкретной даты сортирует по времени начала, иначе - сначала новые.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(joinedColumns()...).
		From("bookings b").
		LeftJoin("tables t ON t.id = b.table_id")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.date": *filter.Date})
	}
	if filter.TableID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.table_id": *filter.TableID})
	}
	if filter.Phone != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.customer_phone": *filter.Phone})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": statuses})
	}

	switch {
	case filter.NewestFirst:
		selectBuilder = selectBuilder.OrderBy("b.created_at DESC")
	case filter.Date != nil:
		selectBuilder = selectBuilder.OrderBy("b.start_min ASC")
	default:
		selectBuilder = selectBuilder.OrderBy("b.date DESC, b.start_min DESC")
	}

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByDateRange получает бронирования за закрытый интервал дат [from, to]
// в указанных статусах. Используется отчетами.
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(joinedColumns()...).
		From("bookings b").
		LeftJoin("tables t ON t.id = b.table_id").
		Where(squirrel.GtOrEq{"b.date": from}).
		Where(squirrel.LtOrEq{"b.date": to})

	if len(statuses) > 0 {
		statusStrings := make([]string, len(statuses))
		for i, s := range statuses {
			statusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": statusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("b.date ASC, b.start_min ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByTableAndDate получает бронирования стола на дату в указанных статусах.
// Если вызов идёт внутри транзакции, строки блокируются (FOR UPDATE) —
// используется usecase создания бронирования для защиты от гонки за слот.
func (r *Repository) GetByTableAndDate(ctx context.Context, tableID int64, date time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(plainColumns()...).
		From("bookings").
		Where(squirrel.Eq{"table_id": tableID}).
		Where(squirrel.Eq{"date": date})

	if len(statuses) > 0 {
		statusStrings := make([]string, len(statuses))
		for i, s := range statuses {
			statusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("start_min ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTableAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTableAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPlainBookings(rows)
}

// CountByPhoneAndDate считает бронирования телефона на дату в указанных статусах.
// Используется для дневного rate limit.
func (r *Repository) CountByPhoneAndDate(ctx context.Context, phone string, date time.Time, statuses []domain.BookingStatus) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"customer_phone": phone}).
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.Eq{"status": statusStrings}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByPhoneAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByPhoneAndDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Column sets

func plainColumns() []string {
	return []string{
		"id",
		"table_id",
		"customer_name",
		"customer_phone",
		"date",
		"start_time",
		"end_time",
		"status",
		"total_price",
		"slip_url",
		"created_at",
		"updated_at",
	}
}

func joinedColumns() []string {
	return []string{
		"b.id",
		"b.table_id",
		"t.name",
		"b.customer_name",
		"b.customer_phone",
		"b.date",
		"b.start_time",
		"b.end_time",
		"b.status",
		"b.total_price",
		"b.slip_url",
		"b.created_at",
		"b.updated_at",
	}
}

// Scan helpers

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.TableID,
		&booking.TableName,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.TotalPrice,
		&booking.SlipURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func scanPlainBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.TableID,
			&booking.CustomerName,
			&booking.CustomerPhone,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.TotalPrice,
			&booking.SlipURL,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanPlainBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPlainBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

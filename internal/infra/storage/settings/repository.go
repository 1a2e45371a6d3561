package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	"github.com/m04kA/SNK-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SNK-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с singleton-записью настроек магазина
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает запись настроек магазина.
// В таблице shop_settings всегда ровно одна строка (создаётся миграцией).
func (r *Repository) Get(ctx context.Context) (*domain.ShopSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"open_time",
		"close_time",
		"standard_price",
		"vip_price",
		"late_threshold_minutes",
		"payment_qr_url",
		"updated_at",
	).
		From("shop_settings").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.ShopSettings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.OpenTime,
		&settings.CloseTime,
		&settings.StandardPrice,
		&settings.VIPPrice,
		&settings.LateThresholdMinutes,
		&settings.PaymentQRURL,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// Update частично обновляет настройки: изменяются только не-nil поля.
// Возвращает обновленную запись.
func (r *Repository) Update(ctx context.Context, update domain.ShopSettingsUpdate) (*domain.ShopSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("shop_settings")
	fields := 0

	if update.OpenTime != nil {
		updateBuilder = updateBuilder.Set("open_time", *update.OpenTime)
		fields++
	}
	if update.CloseTime != nil {
		updateBuilder = updateBuilder.Set("close_time", *update.CloseTime)
		fields++
	}
	if update.StandardPrice != nil {
		updateBuilder = updateBuilder.Set("standard_price", *update.StandardPrice)
		fields++
	}
	if update.VIPPrice != nil {
		updateBuilder = updateBuilder.Set("vip_price", *update.VIPPrice)
		fields++
	}
	if update.LateThresholdMinutes != nil {
		updateBuilder = updateBuilder.Set("late_threshold_minutes", *update.LateThresholdMinutes)
		fields++
	}
	if update.PaymentQRURL != nil {
		updateBuilder = updateBuilder.Set("payment_qr_url", *update.PaymentQRURL)
		fields++
	}

	if fields == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	query, args, err := updateBuilder.
		Set("updated_at", squirrel.Expr("NOW()")).
		Suffix("RETURNING id, open_time, close_time, standard_price, vip_price, late_threshold_minutes, payment_qr_url, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var settings domain.ShopSettings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.OpenTime,
		&settings.CloseTime,
		&settings.StandardPrice,
		&settings.VIPPrice,
		&settings.LateThresholdMinutes,
		&settings.PaymentQRURL,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

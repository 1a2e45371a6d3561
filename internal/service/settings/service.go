package settings

import (
	"context"
	"errors"
	"fmt"

	settingsRepo "github.com/m04kA/SNK-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/SNK-BookingService/internal/service/settings/models"
)

// Service сервис настроек магазина.
// Настройки читаются из БД при каждой операции и нигде не кешируются:
// изменение цен или часов работы действует немедленно.
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get получает полные настройки магазина (админский вид)
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("Get: shop settings record is missing")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// GetPublic получает публичные настройки для клиентских страниц
func (s *Service) GetPublic(ctx context.Context) (*models.PublicSettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("GetPublic: shop settings record is missing")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("GetPublic: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPublic - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettingsPublic(settings), nil
}

// Update частично обновляет настройки магазина
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating shop settings")

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid settings payload: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if update.StandardPrice != nil && *update.StandardPrice < 0 {
		return nil, fmt.Errorf("%w: standard price must be non-negative", ErrInvalidInput)
	}
	if update.VIPPrice != nil && *update.VIPPrice < 0 {
		return nil, fmt.Errorf("%w: vip price must be non-negative", ErrInvalidInput)
	}
	if update.LateThresholdMinutes != nil && *update.LateThresholdMinutes < 0 {
		return nil, fmt.Errorf("%w: late threshold must be non-negative", ErrInvalidInput)
	}

	updated, err := s.settingsRepo.Update(ctx, update)
	if err != nil {
		switch {
		case errors.Is(err, settingsRepo.ErrNoFieldsToUpdate):
			s.logger.Warn("Update: no fields to update")
			return nil, ErrNoFieldsToUpdate
		case errors.Is(err, settingsRepo.ErrSettingsNotFound):
			s.logger.Error("Update: shop settings record is missing")
			return nil, ErrSettingsNotFound
		default:
			s.logger.Error("Update: repository error: %v", err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: shop settings updated")
	return models.FromDomainSettings(updated), nil
}

package tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	tableRepo "github.com/m04kA/SNK-BookingService/internal/infra/storage/table"
	"github.com/m04kA/SNK-BookingService/internal/integrations/notifier"
	"github.com/m04kA/SNK-BookingService/internal/service/tables/models"
)

// Service сервис управления столами (операции персонала)
type Service struct {
	tableRepo TableRepository
	notifier  Notifier
	logger    Logger
}

// NewService создает новый экземпляр сервиса столов
func NewService(
	tableRepo TableRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		tableRepo: tableRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// Create создает новый стол
func (s *Service) Create(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Create: creating table name=%s type=%s", req.Name, req.Type)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: table name is required", ErrInvalidInput)
	}
	if !domain.ValidTableType(domain.TableType(req.Type)) {
		return nil, fmt.Errorf("%w: unknown table type %q", ErrInvalidInput, req.Type)
	}

	status := domain.TableAvailable
	if req.Status != nil {
		if !domain.ValidTableStatus(domain.TableStatus(*req.Status)) {
			return nil, fmt.Errorf("%w: unknown table status %q", ErrInvalidInput, *req.Status)
		}
		status = domain.TableStatus(*req.Status)
	}

	table := &domain.Table{
		Name:   req.Name,
		Type:   domain.TableType(req.Type),
		Status: status,
	}

	created, err := s.tableRepo.Create(ctx, table)
	if err != nil {
		s.logger.Error("Create: repository error for table name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: table id=%d created", created.ID)
	return models.FromDomainTable(created), nil
}

// GetByID получает стол по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TableResponse, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("GetByID: table id=%d not found", id)
			return nil, ErrTableNotFound
		}
		s.logger.Error("GetByID: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTable(table), nil
}

// Update обновляет имя и тип стола
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTableRequest) (*models.TableResponse, error) {
	s.logger.Info("Update: updating table id=%d", id)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: table name is required", ErrInvalidInput)
	}
	if !domain.ValidTableType(domain.TableType(req.Type)) {
		return nil, fmt.Errorf("%w: unknown table type %q", ErrInvalidInput, req.Type)
	}

	updated, err := s.tableRepo.Update(ctx, id, req.Name, domain.TableType(req.Type))
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("Update: table id=%d not found", id)
			return nil, ErrTableNotFound
		}
		s.logger.Error("Update: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: table id=%d updated", id)
	return models.FromDomainTable(updated), nil
}

// UpdateStatus переводит стол в новый статус (available, occupied, maintenance)
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateTableStatusRequest) (*models.TableResponse, error) {
	s.logger.Info("UpdateStatus: updating table id=%d to status=%s", id, req.Status)

	if !domain.ValidTableStatus(domain.TableStatus(req.Status)) {
		return nil, fmt.Errorf("%w: unknown table status %q", ErrInvalidInput, req.Status)
	}
	newStatus := domain.TableStatus(req.Status)

	if err := s.tableRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("UpdateStatus: table id=%d not found", id)
			return nil, ErrTableNotFound
		}
		s.logger.Error("UpdateStatus: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Уведомление best-effort: сбой не влияет на результат операции
	if err := s.notifier.Send(ctx, notifier.Event{
		Type:    notifier.EventTableStatusChanged,
		TableID: id,
		Status:  string(newStatus),
	}); err != nil {
		s.logger.Warn("UpdateStatus: failed to notify table id=%d status=%s: %v", id, newStatus, err)
	}

	s.logger.Info("UpdateStatus: table id=%d updated to status=%s", id, newStatus)
	return models.FromDomainTable(table), nil
}

// Delete удаляет стол. Стол с привязанными бронированиями удалить нельзя.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting table id=%d", id)

	if err := s.tableRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, tableRepo.ErrTableNotFound):
			s.logger.Warn("Delete: table id=%d not found", id)
			return ErrTableNotFound
		case errors.Is(err, tableRepo.ErrTableHasBookings):
			s.logger.Warn("Delete: table id=%d has bookings, refusing to delete", id)
			return ErrTableHasBookings
		default:
			s.logger.Error("Delete: repository error for table id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: table id=%d deleted", id)
	return nil
}

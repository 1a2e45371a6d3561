package tables

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	tableRepo "github.com/m04kA/SNK-BookingService/internal/infra/storage/table"
	"github.com/m04kA/SNK-BookingService/internal/integrations/notifier"
	"github.com/m04kA/SNK-BookingService/internal/service/tables/models"
)

type fakeTableRepo struct {
	table     *domain.Table
	getErr    error
	deleteErr error

	created       *domain.Table
	updatedStatus domain.TableStatus
}

func (f *fakeTableRepo) Create(_ context.Context, table *domain.Table) (*domain.Table, error) {
	created := *table
	created.ID = 7
	f.created = &created
	return &created, nil
}

func (f *fakeTableRepo) GetByID(_ context.Context, _ int64) (*domain.Table, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.table, nil
}

func (f *fakeTableRepo) Update(_ context.Context, id int64, name string, tableType domain.TableType) (*domain.Table, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	updated := *f.table
	updated.ID = id
	updated.Name = name
	updated.Type = tableType
	return &updated, nil
}

func (f *fakeTableRepo) UpdateStatus(_ context.Context, _ int64, status domain.TableStatus) error {
	f.updatedStatus = status
	f.table.Status = status
	return nil
}

func (f *fakeTableRepo) Delete(_ context.Context, _ int64) error {
	return f.deleteErr
}

type fakeNotifier struct {
	events []notifier.Event
}

func (f *fakeNotifier) Send(_ context.Context, event notifier.Event) error {
	f.events = append(f.events, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeTableRepo, *fakeNotifier) {
	repo := &fakeTableRepo{table: &domain.Table{
		ID:     1,
		Name:   "Стол 1",
		Type:   domain.TableStandard,
		Status: domain.TableAvailable,
	}}
	ntf := &fakeNotifier{}
	return NewService(repo, ntf, nopLogger{}), repo, ntf
}

func TestCreate(t *testing.T) {
	svc, repo, _ := newService()

	resp, err := svc.Create(context.Background(), &models.CreateTableRequest{Name: "VIP 1", Type: "vip"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "vip", resp.Type)
	// Статус по умолчанию available
	assert.Equal(t, "available", resp.Status)
	assert.Equal(t, domain.TableAvailable, repo.created.Status)
}

func TestCreate_ExplicitStatus(t *testing.T) {
	svc, _, _ := newService()

	status := "maintenance"
	resp, err := svc.Create(context.Background(), &models.CreateTableRequest{Name: "Стол 2", Type: "standard", Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "maintenance", resp.Status)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Create(context.Background(), &models.CreateTableRequest{Name: "", Type: "vip"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateTableRequest{Name: "Стол", Type: "premium"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := "broken"
	_, err = svc.Create(context.Background(), &models.CreateTableRequest{Name: "Стол", Type: "vip", Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, repo, _ := newService()
	repo.getErr = tableRepo.ErrTableNotFound

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestUpdate(t *testing.T) {
	svc, _, _ := newService()

	resp, err := svc.Update(context.Background(), 1, &models.UpdateTableRequest{Name: "Переименованный", Type: "vip"})
	require.NoError(t, err)
	assert.Equal(t, "Переименованный", resp.Name)
	assert.Equal(t, "vip", resp.Type)
}

func TestUpdateStatus(t *testing.T) {
	svc, repo, ntf := newService()

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateTableStatusRequest{Status: "occupied"})
	require.NoError(t, err)

	assert.Equal(t, "occupied", resp.Status)
	assert.Equal(t, domain.TableOccupied, repo.updatedStatus)

	require.Len(t, ntf.events, 1)
	assert.Equal(t, notifier.EventTableStatusChanged, ntf.events[0].Type)
	assert.Equal(t, int64(1), ntf.events[0].TableID)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _, ntf := newService()

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateTableStatusRequest{Status: "busy"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, ntf.events)
}

func TestDelete(t *testing.T) {
	svc, _, _ := newService()
	assert.NoError(t, svc.Delete(context.Background(), 1))
}

func TestDelete_HasBookings(t *testing.T) {
	svc, repo, _ := newService()
	repo.deleteErr = tableRepo.ErrTableHasBookings

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrTableHasBookings)
}

func TestDelete_NotFound(t *testing.T) {
	svc, repo, _ := newService()
	repo.deleteErr = tableRepo.ErrTableNotFound

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

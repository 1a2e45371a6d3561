package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SNK-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/SNK-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/SNK-BookingService/internal/service/settings/models"
	"github.com/m04kA/SNK-BookingService/pkg/ptr"
)

type fakeSettingsRepo struct {
	settings  *domain.ShopSettings
	getErr    error
	updateErr error
	update    *domain.ShopSettingsUpdate
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.ShopSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, update domain.ShopSettingsUpdate) (*domain.ShopSettings, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.update = &update
	updated := *f.settings
	if update.StandardPrice != nil {
		updated.StandardPrice = *update.StandardPrice
	}
	if update.OpenTime != nil {
		updated.OpenTime = *update.OpenTime
	}
	return &updated, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeSettingsRepo) {
	qr := "https://pay.example.com/qr.png"
	repo := &fakeSettingsRepo{settings: &domain.ShopSettings{
		ID:                   1,
		OpenTime:             "10:00",
		CloseTime:            "02:00",
		StandardPrice:        300,
		VIPPrice:             500,
		LateThresholdMinutes: 10,
		PaymentQRURL:         &qr,
	}}
	return NewService(repo, nopLogger{}), repo
}

func TestGet(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "10:00", resp.OpenTime)
	assert.Equal(t, "02:00", resp.CloseTime)
	assert.Equal(t, 10, resp.LateThresholdMinutes)
	require.NotNil(t, resp.PaymentQRURL)
}

func TestGet_NotFound(t *testing.T) {
	svc, repo := newService()
	repo.getErr = settingsRepo.ErrSettingsNotFound

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

// Публичный вид не содержит порога опоздания
func TestGetPublic(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetPublic(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "10:00", resp.OpenTime)
	assert.Equal(t, 300.0, resp.StandardPrice)
	assert.Equal(t, 500.0, resp.VIPPrice)
	require.NotNil(t, resp.PaymentQRURL)
}

func TestUpdate_Partial(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		StandardPrice: ptr.Ptr(float64(350)),
	})
	require.NoError(t, err)

	assert.Equal(t, 350.0, resp.StandardPrice)
	// Незаполненные поля не трогаются
	assert.Nil(t, repo.update.VIPPrice)
	assert.Nil(t, repo.update.OpenTime)
}

func TestUpdate_InvalidTime(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		OpenTime: ptr.Ptr("25:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NegativeValues(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		StandardPrice: ptr.Ptr(float64(-1)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), &models.UpdateSettingsRequest{
		VIPPrice: ptr.Ptr(float64(-100)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	threshold := -5
	_, err = svc.Update(context.Background(), &models.UpdateSettingsRequest{
		LateThresholdMinutes: &threshold,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NoFields(t *testing.T) {
	svc, repo := newService()
	repo.updateErr = settingsRepo.ErrNoFieldsToUpdate

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

package impl

import (
	"context"
	"strings"
	"testing"

	"arbolitos/config"
	domainerrors "arbolitos/internal/domain/errors"
	"arbolitos/internal/domain/repository"
	mockRepo "arbolitos/internal/mocks/repository"
	mockSvc "arbolitos/internal/mocks/service"
	"arbolitos/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settingsServiceFixture struct {
	settingsRepo *mockRepo.MockSettingsRepository
	fileStorage  *mockSvc.MockFileStorage
	qrcode       *mockSvc.MockQRCodeService
	config       *config.Config
	service      usecase.SettingsUsecase
}

func createTestSettingsService(t *testing.T, cfg *config.Config) *settingsServiceFixture {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}

	f := &settingsServiceFixture{
		settingsRepo: mockRepo.NewMockSettingsRepository(t),
		fileStorage:  mockSvc.NewMockFileStorage(t),
		qrcode:       mockSvc.NewMockQRCodeService(t),
		config:       cfg,
	}
	f.service = NewSettingsService(SettingsServiceParams{
		SettingsRepo:  f.settingsRepo,
		FileStorage:   f.fileStorage,
		QRCodeService: f.qrcode,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})

	return f
}

func TestSettingsService_EnsureInitialized_ReturnsExisting(t *testing.T) {
	f := createTestSettingsService(t, nil)
	ctx := context.Background()

	stored := testSettings()
	f.settingsRepo.EXPECT().Get(ctx).Return(stored, nil)

	settings, err := f.service.EnsureInitialized(ctx)
	require.NoError(t, err)
	assert.Same(t, stored, settings)
}

func TestSettingsService_EnsureInitialized_CreatesConfiguredDefaults(t *testing.T) {
	cfg := &config.Config{
		Defaults: &config.DefaultsConfig{
			AdoptionPrice:  40,
			WaterPrice:     12,
			WelcomeCredits: 5,
			Currency:       "ARS",
			PaymentAccount: "arbolitos.muni",
			Packages: []config.PackageDefault{
				{ID: "basico", Name: "Básico", Credits: 25, Bonus: 3, Price: decimal.NewFromInt(1500)},
			},
		},
	}
	f := createTestSettingsService(t, cfg)
	ctx := context.Background()

	f.settingsRepo.EXPECT().Get(ctx).Return(nil, repository.ErrSettingsNotFound)
	f.settingsRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Settings")).Return(nil)

	settings, err := f.service.EnsureInitialized(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, settings.AdoptionPrice)
	assert.Equal(t, 12, settings.WaterPrice)
	assert.Equal(t, 5, settings.WelcomeCredits)
	assert.Equal(t, "arbolitos.muni", settings.PaymentAccount)
	require.Len(t, settings.Packages, 1)
	assert.Equal(t, "basico", settings.Packages[0].ID)
	assert.Equal(t, 25, settings.Packages[0].Credits)
}

func TestSettingsService_EnsureInitialized_FallbackDefaults(t *testing.T) {
	f := createTestSettingsService(t, &config.Config{})
	ctx := context.Background()

	f.settingsRepo.EXPECT().Get(ctx).Return(nil, repository.ErrSettingsNotFound)
	f.settingsRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Settings")).Return(nil)

	settings, err := f.service.EnsureInitialized(ctx)
	require.NoError(t, err)
	assert.Equal(t, fallbackAdoptionPrice, settings.AdoptionPrice)
	assert.Equal(t, fallbackWaterPrice, settings.WaterPrice)
	assert.Equal(t, fallbackWelcomeCredits, settings.WelcomeCredits)
	assert.Equal(t, fallbackCurrency, settings.Currency)
}

func TestSettingsService_EnsureInitialized_LosesInsertRace(t *testing.T) {
	f := createTestSettingsService(t, nil)
	ctx := context.Background()

	winner := testSettings()

	f.settingsRepo.EXPECT().Get(ctx).Return(nil, repository.ErrSettingsNotFound).Once()
	f.settingsRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Settings")).Return(domainerrors.ErrConflict)
	f.settingsRepo.EXPECT().Get(ctx).Return(winner, nil).Once()

	settings, err := f.service.EnsureInitialized(ctx)
	require.NoError(t, err)
	assert.Same(t, winner, settings)
}

func TestSettingsService_Update_PartialEdit(t *testing.T) {
	f := createTestSettingsService(t, nil)
	ctx := context.Background()

	stored := testSettings()
	f.settingsRepo.EXPECT().Get(ctx).Return(stored, nil)
	f.settingsRepo.EXPECT().Update(ctx, stored).Return(nil)

	newPrice := 50
	account := "nueva.cuenta"
	settings, err := f.service.Update(ctx, usecase.SettingsInput{
		AdoptionPrice:  &newPrice,
		PaymentAccount: &account,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, settings.AdoptionPrice)
	assert.Equal(t, "nueva.cuenta", settings.PaymentAccount)
	// Unset fields keep their stored values.
	assert.Equal(t, 10, settings.WaterPrice)
	assert.Equal(t, "ARS", settings.Currency)
}

func TestSettingsService_Update_RejectsNegativePrice(t *testing.T) {
	f := createTestSettingsService(t, nil)
	ctx := context.Background()

	f.settingsRepo.EXPECT().Get(ctx).Return(testSettings(), nil)

	negative := -1
	_, err := f.service.Update(ctx, usecase.SettingsInput{WaterPrice: &negative})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestSettingsService_UploadPaymentQR_ReplacesPrevious(t *testing.T) {
	f := createTestSettingsService(t, nil)
	ctx := context.Background()

	stored := testSettings()
	stored.PaymentQRURL = "https://blob/settings/qr-old.png"
	stored.PaymentQRKey = "settings/qr-old.png"

	f.settingsRepo.EXPECT().Get(ctx).Return(stored, nil)
	f.fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return("https://blob/settings/qr-new.png", nil)
	f.settingsRepo.EXPECT().Update(ctx, stored).Return(nil)
	f.fileStorage.EXPECT().Delete(ctx, "settings/qr-old.png").Return(nil)

	settings, err := f.service.UploadPaymentQR(ctx, &usecase.FileUpload{
		FileName:    "qr.png",
		ContentType: "image/png",
		Content:     strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://blob/settings/qr-new.png", settings.PaymentQRURL)
	assert.True(t, strings.HasPrefix(settings.PaymentQRKey, "settings/qr-"))
}

func TestSettingsService_UploadPaymentQR_RequiresImage(t *testing.T) {
	f := createTestSettingsService(t, nil)

	_, err := f.service.UploadPaymentQR(context.Background(), nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestSettingsService_PaymentQR_PrefersUploadedImage(t *testing.T) {
	f := createTestSettingsService(t, nil)
	ctx := context.Background()

	stored := testSettings()
	stored.PaymentQRURL = "https://blob/settings/qr.png"
	stored.PaymentAccount = "arbolitos.muni"
	f.settingsRepo.EXPECT().Get(ctx).Return(stored, nil)

	qr, err := f.service.PaymentQR(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://blob/settings/qr.png", qr.ImageURL)
	assert.Nil(t, qr.PNG)
}

func TestSettingsService_PaymentQR_GeneratesFromAccount(t *testing.T) {
	f := createTestSettingsService(t, nil)
	ctx := context.Background()

	stored := testSettings()
	stored.PaymentAccount = "arbolitos.muni"
	f.settingsRepo.EXPECT().Get(ctx).Return(stored, nil)
	f.qrcode.EXPECT().GeneratePNG("arbolitos.muni", 0).Return([]byte{0x89, 0x50}, nil)

	qr, err := f.service.PaymentQR(ctx)
	require.NoError(t, err)
	assert.Empty(t, qr.ImageURL)
	assert.NotEmpty(t, qr.PNG)
}

func TestSettingsService_PaymentQR_NoAccountConfigured(t *testing.T) {
	f := createTestSettingsService(t, nil)
	ctx := context.Background()

	f.settingsRepo.EXPECT().Get(ctx).Return(testSettings(), nil)

	_, err := f.service.PaymentQR(ctx)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), appErr.ErrorCode())
}

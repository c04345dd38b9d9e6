package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"arbolitos/config"
	deliverycontext "arbolitos/internal/delivery/context"
	"arbolitos/internal/domain/entity"
	domainerrors "arbolitos/internal/domain/errors"
	"arbolitos/internal/domain/repository"
	"arbolitos/internal/domain/service"
	"arbolitos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Fallback pricing when no defaults are configured.
const (
	fallbackAdoptionPrice  = 35
	fallbackWaterPrice     = 10
	fallbackWelcomeCredits = 10
	fallbackCurrency       = "ARS"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	settingsRepo  repository.SettingsRepository
	fileStorage   service.FileStorage
	qrcodeService service.QRCodeService
	config        *config.Config
	logger        *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	SettingsRepo  repository.SettingsRepository
	FileStorage   service.FileStorage
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		settingsRepo:  params.SettingsRepo,
		fileStorage:   params.FileStorage,
		qrcodeService: params.QRCodeService,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *settingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureInitialized creates the singleton with configured defaults when it is
// missing. A concurrent initializer losing the insert race falls through to
// re-reading the winner's row, so every caller gets the same settings.
func (srv *settingsService) EnsureInitialized(ctx context.Context) (*entity.Settings, error) {
	settings, err := srv.settingsRepo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repository.ErrSettingsNotFound) {
		return nil, errors.Wrap(err, "failed to get settings")
	}

	defaults := srv.defaultSettings()
	if err := srv.settingsRepo.Create(ctx, defaults); err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			// Another instance won the race; its row is authoritative.
			return srv.settingsRepo.Get(ctx)
		}

		return nil, errors.Wrap(err, "failed to initialize settings")
	}

	srv.log(ctx).Info("Settings initialized with defaults")

	return defaults, nil
}

// Get retrieves the settings, initializing them on first read.
func (srv *settingsService) Get(ctx context.Context) (*entity.Settings, error) {
	return srv.EnsureInitialized(ctx)
}

// Update applies admin edits to the singleton. Unset fields keep their stored
// values.
func (srv *settingsService) Update(ctx context.Context, input usecase.SettingsInput) (*entity.Settings, error) {
	settings, err := srv.EnsureInitialized(ctx)
	if err != nil {
		return nil, err
	}

	if input.AdoptionPrice != nil {
		if *input.AdoptionPrice < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("el precio de adopción no puede ser negativo")
		}
		settings.AdoptionPrice = *input.AdoptionPrice
	}
	if input.WaterPrice != nil {
		if *input.WaterPrice < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("el precio de riego no puede ser negativo")
		}
		settings.WaterPrice = *input.WaterPrice
	}
	if input.WelcomeCredits != nil {
		if *input.WelcomeCredits < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("los créditos de bienvenida no pueden ser negativos")
		}
		settings.WelcomeCredits = *input.WelcomeCredits
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.PaymentAccount != nil {
		settings.PaymentAccount = *input.PaymentAccount
	}
	if input.Packages != nil {
		settings.Packages = input.Packages
	}

	if err := srv.settingsRepo.Update(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to update settings")
	}

	srv.log(ctx).Info("Settings updated")

	return settings, nil
}

// UploadPaymentQR replaces the stored payment QR image. The previous blob is
// deleted after the new one is recorded; only one image is retained.
func (srv *settingsService) UploadPaymentQR(ctx context.Context, upload *usecase.FileUpload) (*entity.Settings, error) {
	if upload == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("la imagen del QR es obligatoria")
	}

	settings, err := srv.EnsureInitialized(ctx)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("settings/qr-%s%s", uuid.New().String(), path.Ext(upload.FileName))
	url, err := srv.fileStorage.Upload(ctx, key, upload.ContentType, upload.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload payment QR")
	}

	previousKey := settings.PaymentQRKey
	settings.PaymentQRURL = url
	settings.PaymentQRKey = key

	if err := srv.settingsRepo.Update(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to store payment QR reference")
	}

	if previousKey != "" {
		if err := srv.fileStorage.Delete(ctx, previousKey); err != nil {
			srv.log(ctx).Warn("Failed to delete previous payment QR", slog.String("key", previousKey), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Payment QR replaced", slog.String("key", key))

	return settings, nil
}

// PaymentQR returns the uploaded image URL when present, otherwise a PNG
// generated from the payment account.
func (srv *settingsService) PaymentQR(ctx context.Context) (*usecase.PaymentQR, error) {
	settings, err := srv.EnsureInitialized(ctx)
	if err != nil {
		return nil, err
	}

	if settings.PaymentQRURL != "" {
		return &usecase.PaymentQR{ImageURL: settings.PaymentQRURL}, nil
	}

	if settings.PaymentAccount == "" {
		return nil, domainerrors.ErrNotFound.WithDetails("no hay cuenta de pago configurada")
	}

	png, err := srv.qrcodeService.GeneratePNG(settings.PaymentAccount, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return &usecase.PaymentQR{PNG: png}, nil
}

// defaultSettings builds the initial singleton from configuration, with
// hard fallbacks when the config section is absent.
func (srv *settingsService) defaultSettings() *entity.Settings {
	settings := &entity.Settings{
		AdoptionPrice:  fallbackAdoptionPrice,
		WaterPrice:     fallbackWaterPrice,
		WelcomeCredits: fallbackWelcomeCredits,
		Currency:       fallbackCurrency,
	}

	cfg := srv.config.Defaults
	if cfg == nil {
		return settings
	}

	if cfg.AdoptionPrice > 0 {
		settings.AdoptionPrice = cfg.AdoptionPrice
	}
	if cfg.WaterPrice > 0 {
		settings.WaterPrice = cfg.WaterPrice
	}
	if cfg.WelcomeCredits >= 0 {
		settings.WelcomeCredits = cfg.WelcomeCredits
	}
	if cfg.Currency != "" {
		settings.Currency = cfg.Currency
	}
	settings.PaymentAccount = cfg.PaymentAccount

	packages := make([]entity.CreditPackage, 0, len(cfg.Packages))
	for _, pkg := range cfg.Packages {
		packages = append(packages, entity.CreditPackage{
			ID:      pkg.ID,
			Name:    pkg.Name,
			Credits: pkg.Credits,
			Bonus:   pkg.Bonus,
			Price:   pkg.Price,
			Popular: pkg.Popular,
		})
	}
	settings.Packages = packages

	return settings
}

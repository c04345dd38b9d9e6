package postgres

import (
	"context"

	"arbolitos/internal/domain/entity"
	domainerrors "arbolitos/internal/domain/errors"
	"arbolitos/internal/domain/repository"
	"arbolitos/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get retrieves the pricing singleton.
func (repo *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settingsM model.SettingsModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", model.SettingsSingletonKey).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to get settings")
	}

	return toSettingsDomain(&settingsM), nil
}

// Create inserts the singleton row. A concurrent initializer loses on the
// primary key and gets ErrConflict, which callers treat as "already there".
func (repo *settingsRepository) Create(ctx context.Context, settings *entity.Settings) error {
	settingsM := fromSettingsDomain(settings)
	settingsM.Key = model.SettingsSingletonKey

	if err := repo.db.WithContext(ctx).Create(settingsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// Update overwrites the singleton row.
func (repo *settingsRepository) Update(ctx context.Context, settings *entity.Settings) error {
	settingsM := fromSettingsDomain(settings)

	result := repo.db.WithContext(ctx).
		Model(&model.SettingsModel{}).
		Where("key = ?", model.SettingsSingletonKey).
		Updates(map[string]any{
			"adoption_price":  settingsM.AdoptionPrice,
			"water_price":     settingsM.WaterPrice,
			"welcome_credits": settingsM.WelcomeCredits,
			"currency":        settingsM.Currency,
			"payment_account": settingsM.PaymentAccount,
			"payment_qr_url":  settingsM.PaymentQRURL,
			"payment_qr_key":  settingsM.PaymentQRKey,
			"packages":        settingsM.Packages,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update settings")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSettingsNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSettingsDomain converts a GORM SettingsModel to a domain Settings entity.
func toSettingsDomain(data *model.SettingsModel) *entity.Settings {
	if data == nil {
		return nil
	}

	packages := make([]entity.CreditPackage, 0, len(data.Packages))
	for _, pkg := range data.Packages {
		packages = append(packages, entity.CreditPackage{
			ID:            pkg.ID,
			Name:          pkg.Name,
			Credits:       pkg.Credits,
			Bonus:         pkg.Bonus,
			Price:         pkg.Price,
			OriginalPrice: pkg.OriginalPrice,
			Popular:       pkg.Popular,
		})
	}

	return &entity.Settings{
		AdoptionPrice:  data.AdoptionPrice,
		WaterPrice:     data.WaterPrice,
		WelcomeCredits: data.WelcomeCredits,
		Currency:       data.Currency,
		PaymentAccount: data.PaymentAccount,
		PaymentQRURL:   data.PaymentQRURL,
		PaymentQRKey:   data.PaymentQRKey,
		Packages:       packages,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromSettingsDomain converts a domain Settings entity to a GORM SettingsModel.
func fromSettingsDomain(data *entity.Settings) *model.SettingsModel {
	if data == nil {
		return nil
	}

	packages := make(model.CreditPackageList, 0, len(data.Packages))
	for _, pkg := range data.Packages {
		packages = append(packages, model.CreditPackageJSON{
			ID:            pkg.ID,
			Name:          pkg.Name,
			Credits:       pkg.Credits,
			Bonus:         pkg.Bonus,
			Price:         pkg.Price,
			OriginalPrice: pkg.OriginalPrice,
			Popular:       pkg.Popular,
		})
	}

	return &model.SettingsModel{
		Key:            model.SettingsSingletonKey,
		AdoptionPrice:  data.AdoptionPrice,
		WaterPrice:     data.WaterPrice,
		WelcomeCredits: data.WelcomeCredits,
		Currency:       data.Currency,
		PaymentAccount: data.PaymentAccount,
		PaymentQRURL:   data.PaymentQRURL,
		PaymentQRKey:   data.PaymentQRKey,
		Packages:       packages,
		UpdatedAt:      data.UpdatedAt,
	}
}

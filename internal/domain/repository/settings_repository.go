package repository

import (
	"context"

	"arbolitos/internal/domain/entity"
	"arbolitos/internal/errors"
)

// ErrSettingsNotFound is returned before the singleton has been initialized.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository manages the pricing singleton. Create targets a fixed
// singleton key, so concurrent cold-start initializers conflict on a unique
// constraint instead of inserting twice.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Create(ctx context.Context, settings *entity.Settings) error
	Update(ctx context.Context, settings *entity.Settings) error
}

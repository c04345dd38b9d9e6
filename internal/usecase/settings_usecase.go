package usecase

import (
	"context"

	"arbolitos/internal/domain/entity"
)

// SettingsInput carries the editable pricing fields. Nil pointers leave the
// stored value untouched.
type SettingsInput struct {
	AdoptionPrice  *int
	WaterPrice     *int
	WelcomeCredits *int
	Currency       *string
	PaymentAccount *string
	Packages       []entity.CreditPackage // nil keeps the stored list
}

// PaymentQR is either a stored image URL or generated PNG bytes, never both.
type PaymentQR struct {
	ImageURL string
	PNG      []byte
}

// SettingsUsecase defines the interface for the pricing singleton use cases.
type SettingsUsecase interface {
	// EnsureInitialized creates the singleton with configured defaults if it
	// does not exist yet, and returns it. Safe to call concurrently.
	EnsureInitialized(ctx context.Context) (*entity.Settings, error)

	// Get retrieves the settings, initializing them on first read.
	Get(ctx context.Context) (*entity.Settings, error)

	// Update applies admin edits to the singleton.
	Update(ctx context.Context, input SettingsInput) (*entity.Settings, error)

	// UploadPaymentQR replaces the stored payment QR image.
	UploadPaymentQR(ctx context.Context, upload *FileUpload) (*entity.Settings, error)

	// PaymentQR returns the uploaded QR image URL, or a PNG generated from
	// the payment account when no image has been uploaded.
	PaymentQR(ctx context.Context) (*PaymentQR, error)
}

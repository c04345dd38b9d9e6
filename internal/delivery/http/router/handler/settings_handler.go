package handler

import (
	"log/slog"
	"net/http"

	"arbolitos/config"
	"arbolitos/internal/delivery/http/middleware"
	"arbolitos/internal/delivery/http/response"
	"arbolitos/internal/domain/entity"
	"arbolitos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// SettingsHandlerParams holds dependencies for SettingsHandler, injected by Fx.
type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// SettingsHandler holds dependencies for settings-related handlers
type SettingsHandler struct {
	settingsUC usecase.SettingsUsecase
	cfg        *config.Config
	logger     *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler
func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: params.SettingsUC,
		cfg:        params.Config,
		logger:     params.Logger,
	}
}

// PackageInput is one entry of the package list in a settings update.
type PackageInput struct {
	ID            string           `json:"id" validate:"required"`
	Name          string           `json:"name" validate:"required"`
	Credits       int              `json:"credits" validate:"min=0"`
	Bonus         int              `json:"bonus" validate:"min=0"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Popular       bool             `json:"popular"`
}

// UpdateSettingsRequest represents the request body for editing the pricing
// singleton. Absent fields keep their stored values.
type UpdateSettingsRequest struct {
	AdoptionPrice  *int           `json:"adoptionPrice"`
	WaterPrice     *int           `json:"waterPrice"`
	WelcomeCredits *int           `json:"welcomeCredits"`
	Currency       *string        `json:"currency"`
	PaymentAccount *string        `json:"paymentAccount"`
	Packages       []PackageInput `json:"packages"`
}

// GetSettings returns the pricing singleton, initializing it on first read
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUC.Get(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSettingsResponse(settings), "Settings retrieved successfully")
}

// UpdateSettings applies admin edits to the pricing singleton. Admin only.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	input := usecase.SettingsInput{
		AdoptionPrice:  req.AdoptionPrice,
		WaterPrice:     req.WaterPrice,
		WelcomeCredits: req.WelcomeCredits,
		Currency:       req.Currency,
		PaymentAccount: req.PaymentAccount,
	}

	if req.Packages != nil {
		packages := make([]entity.CreditPackage, len(req.Packages))
		for i, pkg := range req.Packages {
			if err := c.Validate(&req.Packages[i]); err != nil {
				return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
			}
			packages[i] = entity.CreditPackage{
				ID:            pkg.ID,
				Name:          pkg.Name,
				Credits:       pkg.Credits,
				Bonus:         pkg.Bonus,
				Price:         pkg.Price,
				OriginalPrice: pkg.OriginalPrice,
				Popular:       pkg.Popular,
			}
		}
		input.Packages = packages
	}

	settings, err := h.settingsUC.Update(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSettingsResponse(settings), "Settings updated successfully")
}

// UploadPaymentQR replaces the stored payment QR image. Admin only.
func (h *SettingsHandler) UploadPaymentQR(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	upload, closeFn, err := formFile(c, "image", h.maxUploadSize())
	defer closeFn()
	if err != nil {
		return err
	}

	settings, err := h.settingsUC.UploadPaymentQR(c.Request().Context(), upload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSettingsResponse(settings), "Payment QR uploaded successfully")
}

// GetPaymentQR returns the payment QR. An uploaded image redirects to its
// public URL; otherwise a PNG is generated from the payment account.
func (h *SettingsHandler) GetPaymentQR(c echo.Context) error {
	qr, err := h.settingsUC.PaymentQR(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if qr.ImageURL != "" {
		return c.Redirect(http.StatusFound, qr.ImageURL)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=payment-qr.png")

	return c.Blob(http.StatusOK, "image/png", qr.PNG)
}

func (h *SettingsHandler) maxUploadSize() int64 {
	if h.cfg.Uploads == nil {
		return 0
	}

	return h.cfg.Uploads.MaxSizeBytes
}

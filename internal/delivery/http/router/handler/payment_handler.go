package handler

import (
	"log/slog"
	"net/http"

	"arbolitos/config"
	"arbolitos/internal/delivery/http/middleware"
	"arbolitos/internal/delivery/http/response"
	"arbolitos/internal/domain/entity"
	"arbolitos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for payment-related handlers
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// DecidePaymentRequest represents the request body for the admin decision
type DecidePaymentRequest struct {
	Status string `json:"estado" validate:"required"`
}

// SubmitPayment records a purchase claim. The body is a multipart form with a
// packageId field and an optional proof image.
func (h *PaymentHandler) SubmitPayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	packageID := c.FormValue("packageId")
	if packageID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "packageId is required")
	}

	proof, closeFn, err := formFile(c, "proof", h.maxUploadSize())
	defer closeFn()
	if err != nil {
		return err
	}

	payment, err := h.paymentUC.SubmitPayment(c.Request().Context(), usecase.SubmitPaymentInput{
		UserID:    userID,
		PackageID: packageID,
		Proof:     proof,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPaymentResponse(payment), "Payment submitted successfully")
}

// DecidePayment approves or rejects a pending payment. Admin only.
func (h *PaymentHandler) DecidePayment(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment ID")
	}

	var req DecidePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.paymentUC.DecidePayment(c.Request().Context(), paymentID, adminID, entity.PaymentStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PaymentDecisionResponse{
		Payment: toPaymentResponse(result.Payment),
		Balance: result.Balance,
	}, "Payment decided successfully")
}

// GetPayment retrieves one payment. Citizens only see their own; admins see
// everything.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment ID")
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), paymentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if payment.UserID != userID {
		role, _ := middleware.GetRole(c)
		if role != entity.RoleAdmin {
			return response.Forbidden(c, "FORBIDDEN", "Cannot access another user's payment")
		}
	}

	return response.Success(c, http.StatusOK, toPaymentResponse(payment), "Payment retrieved successfully")
}

// ListPayments retrieves payments, optionally filtered by ?estado=. Admin only.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments, err := h.paymentUC.ListPayments(c.Request().Context(), entity.PaymentStatus(c.QueryParam("estado")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPaymentResponses(payments), "Payments retrieved successfully")
}

// ListMine retrieves the authenticated user's payment history
func (h *PaymentHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	payments, err := h.paymentUC.ListUserPayments(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPaymentResponses(payments), "Payments retrieved successfully")
}

func (h *PaymentHandler) maxUploadSize() int64 {
	if h.cfg.Uploads == nil {
		return 0
	}

	return h.cfg.Uploads.MaxSizeBytes
}

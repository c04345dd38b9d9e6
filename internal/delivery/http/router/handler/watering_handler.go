package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"arbolitos/config"
	"arbolitos/internal/delivery/http/middleware"
	"arbolitos/internal/delivery/http/response"
	"arbolitos/internal/domain/entity"
	"arbolitos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WateringHandlerParams holds dependencies for WateringHandler, injected by Fx.
type WateringHandlerParams struct {
	fx.In

	WateringUC usecase.WateringUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// WateringHandler holds dependencies for watering workflow handlers
type WateringHandler struct {
	wateringUC usecase.WateringUsecase
	cfg        *config.Config
	logger     *slog.Logger
}

// NewWateringHandler is the constructor for WateringHandler
func NewWateringHandler(params WateringHandlerParams) *WateringHandler {
	return &WateringHandler{
		wateringUC: params.WateringUC,
		cfg:        params.Config,
		logger:     params.Logger,
	}
}

// RequestWateringRequest represents the request body for creating a watering
// request. The requester is taken from the access token, not the body.
type RequestWateringRequest struct {
	TreeID  uuid.UUID `json:"treeId" validate:"required"`
	Urgency string    `json:"urgency" validate:"required"`
	Notes   string    `json:"notes"`
}

// UpdateWateringStatusRequest represents the request body for the claim transition
type UpdateWateringStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// RequestWatering creates a watering work item, debiting the requester
func (h *WateringHandler) RequestWatering(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RequestWateringRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid watering request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.wateringUC.RequestWatering(c.Request().Context(), usecase.WateringRequestInput{
		PlantID:     req.TreeID,
		RequesterID: userID,
		Urgency:     entity.Urgency(req.Urgency),
		Notes:       req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, WateringCreatedResponse{
		Request: toWateringResponse(result.Request),
		Balance: result.Balance,
	}, "Watering requested successfully")
}

// UpdateStatus claims a pending request for the authenticated technician
func (h *WateringHandler) UpdateStatus(c echo.Context) error {
	technicianID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid watering request ID")
	}

	var req UpdateWateringStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	request, err := h.wateringUC.UpdateStatus(c.Request().Context(), requestID, technicianID, entity.WateringStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWateringResponse(request), "Watering status updated successfully")
}

// SubmitReport completes a claimed request with the technician's report. The
// body is a multipart form; the photo is mandatory.
func (h *WateringHandler) SubmitReport(c echo.Context) error {
	technicianID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid watering request ID")
	}

	input := usecase.WateringReportInput{
		RequestID:    requestID,
		TechnicianID: technicianID,
		Condition:    c.FormValue("condition"),
		Notes:        c.FormValue("notes"),
	}

	if amountStr := c.FormValue("waterAmountLiters"); amountStr != "" {
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil || amount < 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "waterAmountLiters must be a non-negative number")
		}
		input.WaterAmountLiters = amount
	}

	if durationStr := c.FormValue("durationMinutes"); durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil || duration < 0 {
			return response.BadRequest(c, "VALIDATION_ERROR", "durationMinutes must be a non-negative integer")
		}
		input.DurationMinutes = duration
	}

	photo, closeFn, err := formFile(c, "photo", h.maxUploadSize())
	defer closeFn()
	if err != nil {
		return err
	}
	input.Photo = photo

	request, err := h.wateringUC.SubmitReport(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWateringResponse(request), "Watering report submitted successfully")
}

// GetRequest retrieves one watering request
func (h *WateringHandler) GetRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid watering request ID")
	}

	request, err := h.wateringUC.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWateringResponse(request), "Watering request retrieved successfully")
}

// ListPending retrieves the unclaimed pool, oldest first
func (h *WateringHandler) ListPending(c echo.Context) error {
	requests, err := h.wateringUC.ListPending(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWateringResponses(requests), "Pending watering requests retrieved successfully")
}

// ListMine retrieves the authenticated citizen's own requests
func (h *WateringHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.wateringUC.ListByRequester(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWateringResponses(requests), "Watering requests retrieved successfully")
}

// ListAssigned retrieves the requests claimed by the authenticated technician
func (h *WateringHandler) ListAssigned(c echo.Context) error {
	technicianID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.wateringUC.ListByTechnician(c.Request().Context(), technicianID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWateringResponses(requests), "Watering requests retrieved successfully")
}

func (h *WateringHandler) maxUploadSize() int64 {
	if h.cfg.Uploads == nil {
		return 0
	}

	return h.cfg.Uploads.MaxSizeBytes
}

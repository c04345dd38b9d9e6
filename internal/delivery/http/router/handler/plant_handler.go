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

// PlantHandlerParams holds dependencies for PlantHandler, injected by Fx.
type PlantHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// PlantHandler holds dependencies for catalog-related handlers
type PlantHandler struct {
	catalogUC usecase.CatalogUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewPlantHandler is the constructor for PlantHandler
func NewPlantHandler(params PlantHandlerParams) *PlantHandler {
	return &PlantHandler{
		catalogUC: params.CatalogUC,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// AdoptRequest represents the request body for adopting a tree. The user ID is
// optional; administrators may adopt on a citizen's behalf.
type AdoptRequest struct {
	UserID string `json:"usuarioId"`
}

// CreatePlant adds a tree to the catalog. Admin only. The body is a multipart
// form so the image can travel with the fields.
func (h *PlantHandler) CreatePlant(c echo.Context) error {
	input, closeFn, err := h.plantInputFromForm(c)
	defer closeFn()
	if err != nil {
		return err
	}

	plant, err := h.catalogUC.CreatePlant(c.Request().Context(), *input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPlantResponse(plant), "Plant created successfully")
}

// UpdatePlant edits a catalog entry. Admin only.
func (h *PlantHandler) UpdatePlant(c echo.Context) error {
	plantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plant ID")
	}

	input, closeFn, err := h.plantInputFromForm(c)
	defer closeFn()
	if err != nil {
		return err
	}

	plant, err := h.catalogUC.UpdatePlant(c.Request().Context(), plantID, *input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlantResponse(plant), "Plant updated successfully")
}

// DeletePlant removes a catalog entry. Admin only.
func (h *PlantHandler) DeletePlant(c echo.Context) error {
	plantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plant ID")
	}

	if err := h.catalogUC.DeletePlant(c.Request().Context(), plantID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Plant deleted successfully")
}

// GetPlant retrieves one tree
func (h *PlantHandler) GetPlant(c echo.Context) error {
	plantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plant ID")
	}

	plant, err := h.catalogUC.GetPlant(c.Request().Context(), plantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlantResponse(plant), "Plant retrieved successfully")
}

// ListPlants retrieves catalog entries. Optional query parameters: estado,
// especie, lat and lon. With lat/lon set the results come back nearest first.
func (h *PlantHandler) ListPlants(c echo.Context) error {
	filter := usecase.PlantListFilter{
		Status:  entity.PlantStatus(c.QueryParam("estado")),
		Species: c.QueryParam("especie"),
	}

	if filter.Status != "" && !filter.Status.IsValid() {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown plant status")
	}

	latStr, lonStr := c.QueryParam("lat"), c.QueryParam("lon")
	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			return response.BadRequest(c, "INVALID_COORDINATES", "Invalid lat/lon query parameters")
		}
		filter.Near = &usecase.LatLon{Latitude: lat, Longitude: lon}
	}

	plants, err := h.catalogUC.ListPlants(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlantResponses(plants), "Plants retrieved successfully")
}

// AdoptPlant handles the adoption transition. Citizens adopt for themselves;
// an administrator may pass usuarioId to adopt on a citizen's behalf.
func (h *PlantHandler) AdoptPlant(c echo.Context) error {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	plantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plant ID")
	}

	adopterID := callerID
	var req AdoptRequest
	if err := c.Bind(&req); err == nil && req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
		}
		if parsed != callerID {
			role, _ := middleware.GetRole(c)
			if role != entity.RoleAdmin {
				return response.Forbidden(c, "FORBIDDEN", "Cannot adopt on behalf of another user")
			}
		}
		adopterID = parsed
	}

	result, err := h.catalogUC.AdoptPlant(c.Request().Context(), plantID, adopterID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AdoptionResponse{
		Plant:   toPlantResponse(result.Plant),
		Balance: result.Balance,
	}, "Plant adopted successfully")
}

// plantInputFromForm reads the multipart form shared by create and update.
func (h *PlantHandler) plantInputFromForm(c echo.Context) (*usecase.PlantInput, func(), error) {
	noop := func() {}

	input := usecase.PlantInput{
		Species:     c.FormValue("species"),
		CommonName:  c.FormValue("commonName"),
		Description: c.FormValue("description"),
		Status:      entity.PlantStatus(c.FormValue("status")),
	}

	if input.Species == "" || input.CommonName == "" {
		return nil, noop, response.BadRequest(c, "VALIDATION_ERROR", "species and commonName are required")
	}

	lat, latErr := strconv.ParseFloat(c.FormValue("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(c.FormValue("longitude"), 64)
	if latErr != nil || lonErr != nil {
		return nil, noop, response.BadRequest(c, "INVALID_COORDINATES", "latitude and longitude are required numbers")
	}
	input.Latitude = lat
	input.Longitude = lon

	if costStr := c.FormValue("adoptionCost"); costStr != "" {
		cost, err := strconv.Atoi(costStr)
		if err != nil || cost < 0 {
			return nil, noop, response.BadRequest(c, "INVALID_COST", "adoptionCost must be a non-negative integer")
		}
		input.AdoptionCost = &cost
	}

	image, closeFn, err := formFile(c, "image", h.maxUploadSize())
	if err != nil {
		return nil, closeFn, err
	}
	input.Image = image

	return &input, closeFn, nil
}

func (h *PlantHandler) maxUploadSize() int64 {
	if h.cfg.Uploads == nil {
		return 0
	}

	return h.cfg.Uploads.MaxSizeBytes
}

package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arbolitos/config"
	"arbolitos/internal/delivery/http/validator"
	"arbolitos/internal/domain/entity"
	mockUC "arbolitos/internal/mocks/usecase"
	"arbolitos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wateringHandlerFixture struct {
	wateringUC *mockUC.MockWateringUsecase
	handler    *WateringHandler
	echo       *echo.Echo
}

func createTestWateringHandler(t *testing.T) *wateringHandlerFixture {
	t.Helper()

	f := &wateringHandlerFixture{
		wateringUC: mockUC.NewMockWateringUsecase(t),
	}
	f.handler = NewWateringHandler(WateringHandlerParams{
		WateringUC: f.wateringUC,
		Config:     &config.Config{},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	f.echo = echo.New()
	f.echo.Validator = validator.New()

	return f
}

func TestWateringHandler_RequestWatering_BindsDocumentedBody(t *testing.T) {
	f := createTestWateringHandler(t)
	treeID := uuid.New()
	requesterID := uuid.New()

	body := `{"treeId":"` + treeID.String() + `","urgency":"high","notes":"hojas secas"}`
	req := httptest.NewRequest(http.MethodPost, "/tecnico/solicitar", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	c.Set("userID", requesterID)

	f.wateringUC.EXPECT().
		RequestWatering(mock.Anything, mock.AnythingOfType("usecase.WateringRequestInput")).
		Run(func(_ context.Context, input usecase.WateringRequestInput) {
			assert.Equal(t, treeID, input.PlantID)
			assert.Equal(t, requesterID, input.RequesterID)
			assert.Equal(t, entity.UrgencyHigh, input.Urgency)
			assert.Equal(t, "hojas secas", input.Notes)
		}).
		Return(&usecase.WateringResult{
			Request: &entity.WateringRequest{ID: uuid.New(), Status: entity.WateringStatusAssigned},
			Balance: 20,
		}, nil)

	require.NoError(t, f.handler.RequestWatering(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestWateringHandler_UpdateStatus_BindsStatusKey(t *testing.T) {
	f := createTestWateringHandler(t)
	requestID := uuid.New()
	technicianID := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/tecnico/"+requestID.String()+"/estado", strings.NewReader(`{"status":"in-progress"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())
	c.Set("userID", technicianID)

	f.wateringUC.EXPECT().
		UpdateStatus(mock.Anything, requestID, technicianID, entity.WateringStatusInProgress).
		Return(&entity.WateringRequest{ID: requestID, Status: entity.WateringStatusInProgress, TechnicianID: &technicianID}, nil)

	require.NoError(t, f.handler.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

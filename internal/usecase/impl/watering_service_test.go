package impl

import (
	"context"
	"strings"
	"testing"

	"arbolitos/config"
	"arbolitos/internal/domain/entity"
	domainerrors "arbolitos/internal/domain/errors"
	"arbolitos/internal/domain/repository"
	"arbolitos/internal/domain/service"
	mockRepo "arbolitos/internal/mocks/repository"
	mockSvc "arbolitos/internal/mocks/service"
	"arbolitos/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type wateringServiceFixture struct {
	txManager      *mockRepo.MockTransactionManager
	wateringRepo   *mockRepo.MockWateringRepository
	userRepo       *mockRepo.MockUserRepository
	settingsRepo   *mockRepo.MockSettingsRepository
	fileStorage    *mockSvc.MockFileStorage
	notifications  *mockSvc.MockNotificationService
	eventPublisher *mockSvc.MockEventPublisher
	service        usecase.WateringUsecase
}

func createTestWateringService(t *testing.T) *wateringServiceFixture {
	t.Helper()

	f := &wateringServiceFixture{
		txManager:      mockRepo.NewMockTransactionManager(t),
		wateringRepo:   mockRepo.NewMockWateringRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		settingsRepo:   mockRepo.NewMockSettingsRepository(t),
		fileStorage:    mockSvc.NewMockFileStorage(t),
		notifications:  mockSvc.NewMockNotificationService(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
	}

	settingsUsecase := NewSettingsService(SettingsServiceParams{
		SettingsRepo:  f.settingsRepo,
		FileStorage:   mockSvc.NewMockFileStorage(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		Config:        &config.Config{},
		Logger:        newDiscardLogger(),
	})

	f.service = NewWateringService(WateringServiceParams{
		TxManager:           f.txManager,
		WateringRepo:        f.wateringRepo,
		UserRepo:            f.userRepo,
		SettingsUsecase:     settingsUsecase,
		FileStorage:         f.fileStorage,
		NotificationService: f.notifications,
		EventPublisher:      f.eventPublisher,
		Logger:              newDiscardLogger(),
	})

	return f
}

func TestWateringService_RequestWatering_DebitsPriceAndSnapshotsPlant(t *testing.T) {
	f := createTestWateringService(t)
	ctx := context.Background()
	plantID := uuid.New()
	requesterID := uuid.New()
	requestID := uuid.New()

	f.settingsRepo.EXPECT().Get(ctx).Return(testSettings(), nil)

	plant := availablePlant(plantID)
	plant.ImageURL = "https://blob/plants/jacaranda.jpg"

	txPlantRepo := mockRepo.NewMockPlantRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txWateringRepo := mockRepo.NewMockWateringRepository(t)

	txPlantRepo.EXPECT().FindByID(ctx, plantID).Return(plant, nil)
	txUserRepo.EXPECT().DebitCredits(ctx, requesterID, 10).Return(30, nil)
	txWateringRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.WateringRequest")).
		Run(func(_ context.Context, request *entity.WateringRequest) {
			request.ID = requestID
		}).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PlantRepo().Return(txPlantRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	factory.EXPECT().WateringRepo().Return(txWateringRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	f.eventPublisher.EXPECT().
		PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).
		Run(func(_ context.Context, event *service.LedgerEvent) {
			assert.Equal(t, -10, event.Delta)
			assert.Equal(t, 30, event.Balance)
			assert.Equal(t, service.LedgerReasonWatering, event.Reason)
		}).
		Return(nil)

	result, err := f.service.RequestWatering(ctx, usecase.WateringRequestInput{
		PlantID:     plantID,
		RequesterID: requesterID,
		Urgency:     entity.UrgencyHigh,
		Notes:       "hojas amarillas",
	})
	require.NoError(t, err)
	assert.Equal(t, 30, result.Balance)
	assert.Equal(t, entity.WateringStatusAssigned, result.Request.Status)
	assert.Equal(t, "Jacarandá", result.Request.PlantName)
	assert.Equal(t, plant.Latitude, result.Request.PlantLatitude)
	assert.Equal(t, plant.ImageURL, result.Request.PlantImageURL)
}

func TestWateringService_RequestWatering_InsufficientCredits(t *testing.T) {
	f := createTestWateringService(t)
	ctx := context.Background()
	plantID := uuid.New()
	requesterID := uuid.New()

	f.settingsRepo.EXPECT().Get(ctx).Return(testSettings(), nil)

	txPlantRepo := mockRepo.NewMockPlantRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPlantRepo.EXPECT().FindByID(ctx, plantID).Return(availablePlant(plantID), nil)
	txUserRepo.EXPECT().DebitCredits(ctx, requesterID, 10).Return(4, repository.ErrInsufficientCredits)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PlantRepo().Return(txPlantRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := f.service.RequestWatering(ctx, usecase.WateringRequestInput{
		PlantID:     plantID,
		RequesterID: requesterID,
		Urgency:     entity.UrgencyLow,
	})
	require.Error(t, err)

	var creditsErr *domainerrors.InsufficientCreditsError
	require.ErrorAs(t, err, &creditsErr)
	assert.Equal(t, 4, creditsErr.Balance)
	assert.Equal(t, 10, creditsErr.Required)
}

func TestWateringService_RequestWatering_RejectsUnknownUrgency(t *testing.T) {
	f := createTestWateringService(t)

	_, err := f.service.RequestWatering(context.Background(), usecase.WateringRequestInput{
		PlantID:     uuid.New(),
		RequesterID: uuid.New(),
		Urgency:     entity.Urgency("urgentísimo"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestWateringService_UpdateStatus_ClaimsRequest(t *testing.T) {
	f := createTestWateringService(t)
	ctx := context.Background()
	requestID := uuid.New()
	technicianID := uuid.New()

	claimed := &entity.WateringRequest{
		ID:           requestID,
		TechnicianID: &technicianID,
		Status:       entity.WateringStatusInProgress,
	}

	f.wateringRepo.EXPECT().Claim(ctx, requestID, technicianID).Return(nil)
	f.wateringRepo.EXPECT().FindByID(ctx, requestID).Return(claimed, nil)

	request, err := f.service.UpdateStatus(ctx, requestID, technicianID, entity.WateringStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, entity.WateringStatusInProgress, request.Status)
	assert.Equal(t, technicianID, *request.TechnicianID)
}

func TestWateringService_UpdateStatus_CompletionRequiresReport(t *testing.T) {
	f := createTestWateringService(t)

	_, err := f.service.UpdateStatus(context.Background(), uuid.New(), uuid.New(), entity.WateringStatusCompleted)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrWateringInvalidTransition.ErrorCode(), appErr.ErrorCode())
}

func TestWateringService_UpdateStatus_AlreadyClaimed(t *testing.T) {
	f := createTestWateringService(t)
	ctx := context.Background()
	requestID := uuid.New()
	technicianID := uuid.New()

	f.wateringRepo.EXPECT().Claim(ctx, requestID, technicianID).Return(repository.ErrWateringStateConflict)

	_, err := f.service.UpdateStatus(ctx, requestID, technicianID, entity.WateringStatusInProgress)
	require.ErrorIs(t, err, domainerrors.ErrWateringInvalidTransition)
}

func TestWateringService_SubmitReport_CompletesAndNotifies(t *testing.T) {
	f := createTestWateringService(t)
	ctx := context.Background()
	requestID := uuid.New()
	technicianID := uuid.New()
	requesterID := uuid.New()

	claimed := &entity.WateringRequest{
		ID:           requestID,
		RequesterID:  requesterID,
		TechnicianID: &technicianID,
		Status:       entity.WateringStatusInProgress,
		PlantName:    "Jacarandá",
	}
	completed := &entity.WateringRequest{
		ID:           requestID,
		RequesterID:  requesterID,
		TechnicianID: &technicianID,
		Status:       entity.WateringStatusCompleted,
		PlantName:    "Jacarandá",
		Report: &entity.WateringReport{
			Condition: "saludable",
			PhotoURL:  "https://blob/waterings/foto.jpg",
		},
	}

	f.wateringRepo.EXPECT().FindByID(ctx, requestID).Return(claimed, nil).Once()
	f.fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return("https://blob/waterings/foto.jpg", nil)
	f.wateringRepo.EXPECT().
		Complete(ctx, requestID, technicianID, mock.AnythingOfType("*entity.WateringReport"), mock.AnythingOfType("time.Time")).
		Return(nil)
	f.wateringRepo.EXPECT().FindByID(ctx, requestID).Return(completed, nil).Once()

	f.userRepo.EXPECT().
		FindByID(ctx, requesterID).
		Return(&entity.User{ID: requesterID, FCMToken: "fcm-token"}, nil)
	f.notifications.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.PushNotification")).
		Run(func(_ context.Context, notification *service.PushNotification) {
			assert.Equal(t, "fcm-token", notification.Token)
			assert.Contains(t, notification.Body, "Jacarandá")
		}).
		Return(nil)

	request, err := f.service.SubmitReport(ctx, usecase.WateringReportInput{
		RequestID:         requestID,
		TechnicianID:      technicianID,
		Condition:         "saludable",
		WaterAmountLiters: 15.5,
		DurationMinutes:   20,
		Photo: &usecase.FileUpload{
			FileName:    "foto.jpg",
			ContentType: "image/jpeg",
			Content:     strings.NewReader("jpeg-bytes"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.WateringStatusCompleted, request.Status)
	require.NotNil(t, request.Report)
	assert.Equal(t, "https://blob/waterings/foto.jpg", request.Report.PhotoURL)
}

func TestWateringService_SubmitReport_PhotoIsMandatory(t *testing.T) {
	f := createTestWateringService(t)

	_, err := f.service.SubmitReport(context.Background(), usecase.WateringReportInput{
		RequestID:    uuid.New(),
		TechnicianID: uuid.New(),
		Condition:    "saludable",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestWateringService_SubmitReport_OnlyClaimingTechnicianCanComplete(t *testing.T) {
	f := createTestWateringService(t)
	ctx := context.Background()
	requestID := uuid.New()
	claimer := uuid.New()
	other := uuid.New()

	claimed := &entity.WateringRequest{
		ID:           requestID,
		TechnicianID: &claimer,
		Status:       entity.WateringStatusInProgress,
	}
	f.wateringRepo.EXPECT().FindByID(ctx, requestID).Return(claimed, nil)

	_, err := f.service.SubmitReport(ctx, usecase.WateringReportInput{
		RequestID:    requestID,
		TechnicianID: other,
		Photo: &usecase.FileUpload{
			FileName:    "foto.jpg",
			ContentType: "image/jpeg",
			Content:     strings.NewReader("jpeg-bytes"),
		},
	})
	require.ErrorIs(t, err, domainerrors.ErrWateringNotClaimed)
}

func TestWateringService_SubmitReport_UnclaimedRequest(t *testing.T) {
	f := createTestWateringService(t)
	ctx := context.Background()
	requestID := uuid.New()

	unclaimed := &entity.WateringRequest{
		ID:     requestID,
		Status: entity.WateringStatusAssigned,
	}
	f.wateringRepo.EXPECT().FindByID(ctx, requestID).Return(unclaimed, nil)

	_, err := f.service.SubmitReport(ctx, usecase.WateringReportInput{
		RequestID:    requestID,
		TechnicianID: uuid.New(),
		Photo: &usecase.FileUpload{
			FileName:    "foto.jpg",
			ContentType: "image/jpeg",
			Content:     strings.NewReader("jpeg-bytes"),
		},
	})
	require.ErrorIs(t, err, domainerrors.ErrWateringNotClaimed)
}

func TestWateringService_SubmitReport_CompletedRequestCannotBeReportedAgain(t *testing.T) {
	f := createTestWateringService(t)
	ctx := context.Background()
	requestID := uuid.New()
	technicianID := uuid.New()

	// No photo upload may happen for a request that is already terminal.
	finished := &entity.WateringRequest{
		ID:           requestID,
		TechnicianID: &technicianID,
		Status:       entity.WateringStatusCompleted,
	}
	f.wateringRepo.EXPECT().FindByID(ctx, requestID).Return(finished, nil)

	_, err := f.service.SubmitReport(ctx, usecase.WateringReportInput{
		RequestID:    requestID,
		TechnicianID: technicianID,
		Photo: &usecase.FileUpload{
			FileName:    "foto.jpg",
			ContentType: "image/jpeg",
			Content:     strings.NewReader("jpeg-bytes"),
		},
	})
	require.ErrorIs(t, err, domainerrors.ErrWateringInvalidTransition)
}

func TestWateringService_ListPending(t *testing.T) {
	f := createTestWateringService(t)
	ctx := context.Background()

	pending := []*entity.WateringRequest{
		{ID: uuid.New(), Status: entity.WateringStatusAssigned},
	}
	f.wateringRepo.EXPECT().ListPending(ctx).Return(pending, nil)

	requests, err := f.service.ListPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, pending, requests)
}

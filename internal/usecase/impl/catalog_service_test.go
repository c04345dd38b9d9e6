package impl

import (
	"context"
	"errors"
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

type catalogServiceFixture struct {
	txManager      *mockRepo.MockTransactionManager
	plantRepo      *mockRepo.MockPlantRepository
	settingsRepo   *mockRepo.MockSettingsRepository
	fileStorage    *mockSvc.MockFileStorage
	eventPublisher *mockSvc.MockEventPublisher
	service        usecase.CatalogUsecase
}

func createTestCatalogService(t *testing.T) *catalogServiceFixture {
	t.Helper()

	f := &catalogServiceFixture{
		txManager:      mockRepo.NewMockTransactionManager(t),
		plantRepo:      mockRepo.NewMockPlantRepository(t),
		settingsRepo:   mockRepo.NewMockSettingsRepository(t),
		fileStorage:    mockSvc.NewMockFileStorage(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
	}

	settingsUsecase := NewSettingsService(SettingsServiceParams{
		SettingsRepo:  f.settingsRepo,
		FileStorage:   mockSvc.NewMockFileStorage(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		Config:        &config.Config{},
		Logger:        newDiscardLogger(),
	})

	f.service = NewCatalogService(CatalogServiceParams{
		TxManager:       f.txManager,
		PlantRepo:       f.plantRepo,
		SettingsUsecase: settingsUsecase,
		FileStorage:     f.fileStorage,
		EventPublisher:  f.eventPublisher,
		Logger:          newDiscardLogger(),
	})

	return f
}

func availablePlant(id uuid.UUID) *entity.Plant {
	return &entity.Plant{
		ID:         id,
		Species:    "Jacaranda mimosifolia",
		CommonName: "Jacarandá",
		Latitude:   -34.6037,
		Longitude:  -58.3816,
		Status:     entity.PlantStatusAvailable,
	}
}

func TestCatalogService_CreatePlant_WithImage(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	f.fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return("https://blob/plants/abc.jpg", nil)
	f.plantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Plant")).
		Return(nil)

	plant, err := f.service.CreatePlant(ctx, usecase.PlantInput{
		Species:    "Jacaranda mimosifolia",
		CommonName: "Jacarandá",
		Latitude:   -34.6037,
		Longitude:  -58.3816,
		Image: &usecase.FileUpload{
			FileName:    "foto.jpg",
			ContentType: "image/jpeg",
			Content:     strings.NewReader("jpeg-bytes"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PlantStatusAvailable, plant.Status)
	assert.Equal(t, "https://blob/plants/abc.jpg", plant.ImageURL)
}

func TestCatalogService_UpdatePlant_RejectsUnknownStatus(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	plantID := uuid.New()

	f.plantRepo.EXPECT().FindByID(ctx, plantID).Return(availablePlant(plantID), nil)

	_, err := f.service.UpdatePlant(ctx, plantID, usecase.PlantInput{
		Species:    "Jacaranda mimosifolia",
		CommonName: "Jacarandá",
		Status:     entity.PlantStatus("florecido"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_ListPlants_NearOrdersByDistance(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()

	far := availablePlant(uuid.New())
	far.CommonName = "Lejano"
	far.Latitude = -34.9
	far.Longitude = -58.9

	near := availablePlant(uuid.New())
	near.CommonName = "Cercano"
	near.Latitude = -34.604
	near.Longitude = -58.382

	f.plantRepo.EXPECT().
		List(ctx, repository.PlantFilter{}).
		Return([]*entity.Plant{far, near}, nil)

	plants, err := f.service.ListPlants(ctx, usecase.PlantListFilter{
		Near: &usecase.LatLon{Latitude: -34.6037, Longitude: -58.3816},
	})
	require.NoError(t, err)
	require.Len(t, plants, 2)
	assert.Equal(t, "Cercano", plants[0].CommonName)
	assert.Equal(t, "Lejano", plants[1].CommonName)
}

func TestCatalogService_AdoptPlant_DebitsCostAndMarksAdopted(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	plantID := uuid.New()
	userID := uuid.New()

	f.settingsRepo.EXPECT().Get(ctx).Return(testSettings(), nil)

	txPlantRepo := mockRepo.NewMockPlantRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPlantRepo.EXPECT().FindByID(ctx, plantID).Return(availablePlant(plantID), nil)
	txUserRepo.EXPECT().DebitCredits(ctx, userID, 35).Return(5, nil)
	txPlantRepo.EXPECT().
		MarkAdopted(ctx, plantID, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PlantRepo().Return(txPlantRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	f.eventPublisher.EXPECT().
		PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).
		Run(func(_ context.Context, event *service.LedgerEvent) {
			assert.Equal(t, -35, event.Delta)
			assert.Equal(t, 5, event.Balance)
			assert.Equal(t, service.LedgerReasonAdoption, event.Reason)
			assert.Equal(t, plantID.String(), event.Reference)
		}).
		Return(nil)

	result, err := f.service.AdoptPlant(ctx, plantID, userID)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Balance)
	assert.Equal(t, entity.PlantStatusAdopted, result.Plant.Status)
	require.NotNil(t, result.Plant.AdopterID)
	assert.Equal(t, userID, *result.Plant.AdopterID)
	assert.NotNil(t, result.Plant.AdoptedAt)
}

func TestCatalogService_AdoptPlant_UsesPerPlantCostOverride(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	plantID := uuid.New()
	userID := uuid.New()

	f.settingsRepo.EXPECT().Get(ctx).Return(testSettings(), nil)

	override := 50
	plant := availablePlant(plantID)
	plant.AdoptionCost = &override

	txPlantRepo := mockRepo.NewMockPlantRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPlantRepo.EXPECT().FindByID(ctx, plantID).Return(plant, nil)
	txUserRepo.EXPECT().DebitCredits(ctx, userID, 50).Return(10, nil)
	txPlantRepo.EXPECT().
		MarkAdopted(ctx, plantID, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PlantRepo().Return(txPlantRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	f.eventPublisher.EXPECT().
		PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).
		Return(nil)

	result, err := f.service.AdoptPlant(ctx, plantID, userID)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Balance)
}

func TestCatalogService_AdoptPlant_InsufficientCredits(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	plantID := uuid.New()
	userID := uuid.New()

	f.settingsRepo.EXPECT().Get(ctx).Return(testSettings(), nil)

	txPlantRepo := mockRepo.NewMockPlantRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPlantRepo.EXPECT().FindByID(ctx, plantID).Return(availablePlant(plantID), nil)
	txUserRepo.EXPECT().DebitCredits(ctx, userID, 35).Return(20, repository.ErrInsufficientCredits)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PlantRepo().Return(txPlantRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := f.service.AdoptPlant(ctx, plantID, userID)
	require.Error(t, err)

	var creditsErr *domainerrors.InsufficientCreditsError
	require.ErrorAs(t, err, &creditsErr)
	assert.Equal(t, 20, creditsErr.Balance)
	assert.Equal(t, 35, creditsErr.Required)
}

func TestCatalogService_AdoptPlant_UnavailableBeatsInsufficientCredits(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	plantID := uuid.New()
	userID := uuid.New()

	f.settingsRepo.EXPECT().Get(ctx).Return(testSettings(), nil)

	adopted := availablePlant(plantID)
	adopted.Status = entity.PlantStatusAdopted

	// The user could not afford the tree either; no debit may be attempted.
	txPlantRepo := mockRepo.NewMockPlantRepository(t)
	txPlantRepo.EXPECT().FindByID(ctx, plantID).Return(adopted, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PlantRepo().Return(txPlantRepo)
	factory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := f.service.AdoptPlant(ctx, plantID, userID)
	require.ErrorIs(t, err, domainerrors.ErrPlantNotAvailable)

	var creditsErr *domainerrors.InsufficientCreditsError
	assert.False(t, errors.As(err, &creditsErr))
}

func TestCatalogService_AdoptPlant_AlreadyAdopted(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	plantID := uuid.New()
	userID := uuid.New()

	f.settingsRepo.EXPECT().Get(ctx).Return(testSettings(), nil)

	txPlantRepo := mockRepo.NewMockPlantRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPlantRepo.EXPECT().FindByID(ctx, plantID).Return(availablePlant(plantID), nil)
	txUserRepo.EXPECT().DebitCredits(ctx, userID, 35).Return(5, nil)
	txPlantRepo.EXPECT().
		MarkAdopted(ctx, plantID, userID, mock.AnythingOfType("time.Time")).
		Return(repository.ErrPlantNotAvailable)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PlantRepo().Return(txPlantRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := f.service.AdoptPlant(ctx, plantID, userID)
	require.ErrorIs(t, err, domainerrors.ErrPlantNotAvailable)
}

func TestCatalogService_GetPlant_NotFound(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	plantID := uuid.New()

	f.plantRepo.EXPECT().FindByID(ctx, plantID).Return(nil, repository.ErrPlantNotFound)

	_, err := f.service.GetPlant(ctx, plantID)
	require.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
}

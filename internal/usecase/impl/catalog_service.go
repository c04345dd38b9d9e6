package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"time"

	deliverycontext "arbolitos/internal/delivery/context"
	"arbolitos/internal/domain/entity"
	domainerrors "arbolitos/internal/domain/errors"
	"arbolitos/internal/domain/repository"
	"arbolitos/internal/domain/service"
	"arbolitos/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager       repository.TransactionManager
	plantRepo       repository.PlantRepository
	settingsUsecase usecase.SettingsUsecase
	fileStorage     service.FileStorage
	eventPublisher  service.EventPublisher
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	PlantRepo       repository.PlantRepository
	SettingsUsecase usecase.SettingsUsecase
	FileStorage     service.FileStorage
	EventPublisher  service.EventPublisher
	Logger          *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:       params.TxManager,
		plantRepo:       params.PlantRepo,
		settingsUsecase: params.SettingsUsecase,
		fileStorage:     params.FileStorage,
		eventPublisher:  params.EventPublisher,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePlant adds a tree to the catalog, in the available state.
func (srv *catalogService) CreatePlant(ctx context.Context, input usecase.PlantInput) (*entity.Plant, error) {
	plant := &entity.Plant{
		Species:      input.Species,
		CommonName:   input.CommonName,
		Description:  input.Description,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Status:       entity.PlantStatusAvailable,
		AdoptionCost: input.AdoptionCost,
	}

	if input.Image != nil {
		url, err := srv.uploadPlantImage(ctx, input.Image)
		if err != nil {
			return nil, err
		}
		plant.ImageURL = url
	}

	if err := srv.plantRepo.Create(ctx, plant); err != nil {
		return nil, errors.Wrap(err, "failed to create plant")
	}

	srv.log(ctx).Info("Plant created", slog.Any("plantID", plant.ID), slog.String("species", plant.Species))

	return plant, nil
}

// UpdatePlant edits a catalog entry.
func (srv *catalogService) UpdatePlant(ctx context.Context, id uuid.UUID, input usecase.PlantInput) (*entity.Plant, error) {
	plant, err := srv.GetPlant(ctx, id)
	if err != nil {
		return nil, err
	}

	plant.Species = input.Species
	plant.CommonName = input.CommonName
	plant.Description = input.Description
	plant.Latitude = input.Latitude
	plant.Longitude = input.Longitude
	plant.AdoptionCost = input.AdoptionCost

	if input.Status != "" {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("estado desconocido: " + string(input.Status))
		}
		plant.Status = input.Status
	}

	if input.Image != nil {
		url, err := srv.uploadPlantImage(ctx, input.Image)
		if err != nil {
			return nil, err
		}
		plant.ImageURL = url
	}

	if err := srv.plantRepo.Update(ctx, plant); err != nil {
		if errors.Is(err, repository.ErrPlantNotFound) {
			return nil, domainerrors.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to update plant")
	}

	return plant, nil
}

// DeletePlant removes a catalog entry.
func (srv *catalogService) DeletePlant(ctx context.Context, id uuid.UUID) error {
	err := srv.plantRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrPlantNotFound) {
		return domainerrors.ErrPlantNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete plant")
	}

	return nil
}

// GetPlant retrieves one tree.
func (srv *catalogService) GetPlant(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	plant, err := srv.plantRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPlantNotFound) {
		return nil, domainerrors.ErrPlantNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find plant")
	}

	return plant, nil
}

// ListPlants retrieves catalog entries matching the filter. With a reference
// point set, results are ordered nearest first using geodesic distance.
func (srv *catalogService) ListPlants(ctx context.Context, filter usecase.PlantListFilter) ([]*entity.Plant, error) {
	plants, err := srv.plantRepo.List(ctx, repository.PlantFilter{
		Status:  filter.Status,
		Species: filter.Species,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plants")
	}

	if filter.Near != nil {
		origin := orb.Point{filter.Near.Longitude, filter.Near.Latitude}
		sort.SliceStable(plants, func(i, j int) bool {
			return geo.Distance(origin, plants[i].Location()) < geo.Distance(origin, plants[j].Location())
		})
	}

	return plants, nil
}

// AdoptPlant runs the adoption transition: the cost is debited and the tree
// flipped to adopted inside one transaction, so a failed status write also
// rolls the debit back. The status guard in the plant update serializes
// concurrent adopters of the same tree.
func (srv *catalogService) AdoptPlant(ctx context.Context, plantID, userID uuid.UUID) (*usecase.AdoptionResult, error) {
	srv.log(ctx).Info("Starting adoption", slog.Any("plantID", plantID), slog.Any("userID", userID))

	settings, err := srv.settingsUsecase.EnsureInitialized(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load settings for adoption")
	}

	var adopted *entity.Plant
	var balance, cost int
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		plantRepo := repoFactory.PlantRepo()
		userRepo := repoFactory.UserRepo()

		plant, err := plantRepo.FindByID(ctx, plantID)
		if errors.Is(err, repository.ErrPlantNotFound) {
			return domainerrors.ErrPlantNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find plant")
		}

		// Availability is checked before the debit so an unavailable tree
		// reports the state conflict, not the adopter's balance. The guard in
		// MarkAdopted still catches an adopter racing this read.
		if plant.Status != entity.PlantStatusAvailable {
			return domainerrors.ErrPlantNotAvailable
		}

		cost = plant.CostOrDefault(settings.AdoptionPrice)

		newBalance, err := userRepo.DebitCredits(ctx, userID, cost)
		if errors.Is(err, repository.ErrInsufficientCredits) {
			return domainerrors.NewInsufficientCreditsError(newBalance, cost)
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to debit adoption cost")
		}
		balance = newBalance

		now := time.Now()
		if err := plantRepo.MarkAdopted(ctx, plantID, userID, now); err != nil {
			switch {
			case errors.Is(err, repository.ErrPlantNotFound):
				return domainerrors.ErrPlantNotFound
			case errors.Is(err, repository.ErrPlantNotAvailable):
				return domainerrors.ErrPlantNotAvailable
			default:
				return errors.Wrap(err, "failed to mark plant adopted")
			}
		}

		plant.Status = entity.PlantStatusAdopted
		plant.AdopterID = &userID
		plant.AdoptedAt = &now
		adopted = plant

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Adoption failed", slog.Any("plantID", plantID), slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	publishLedgerEvent(ctx, srv.log(ctx), srv.eventPublisher, userID, -cost, balance, service.LedgerReasonAdoption, plantID.String())

	srv.log(ctx).Info("Adoption completed", slog.Any("plantID", plantID), slog.Any("userID", userID), slog.Int("balance", balance))

	return &usecase.AdoptionResult{Plant: adopted, Balance: balance}, nil
}

func (srv *catalogService) uploadPlantImage(ctx context.Context, upload *usecase.FileUpload) (string, error) {
	key := fmt.Sprintf("plants/%s%s", uuid.New().String(), path.Ext(upload.FileName))

	url, err := srv.fileStorage.Upload(ctx, key, upload.ContentType, upload.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload plant image")
	}

	return url, nil
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	deliverycontext "arbolitos/internal/delivery/context"
	"arbolitos/internal/domain/entity"
	domainerrors "arbolitos/internal/domain/errors"
	"arbolitos/internal/domain/repository"
	"arbolitos/internal/domain/service"
	"arbolitos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wateringService implements the WateringUsecase interface.
type wateringService struct {
	txManager           repository.TransactionManager
	wateringRepo        repository.WateringRepository
	userRepo            repository.UserRepository
	settingsUsecase     usecase.SettingsUsecase
	fileStorage         service.FileStorage
	notificationService service.NotificationService
	eventPublisher      service.EventPublisher
	logger              *slog.Logger
}

// WateringServiceParams holds dependencies for WateringService, injected by Fx.
type WateringServiceParams struct {
	fx.In

	TxManager           repository.TransactionManager
	WateringRepo        repository.WateringRepository
	UserRepo            repository.UserRepository
	SettingsUsecase     usecase.SettingsUsecase
	FileStorage         service.FileStorage
	NotificationService service.NotificationService
	EventPublisher      service.EventPublisher
	Logger              *slog.Logger
}

// NewWateringService creates a new watering service instance
func NewWateringService(params WateringServiceParams) usecase.WateringUsecase {
	return &wateringService{
		txManager:           params.TxManager,
		wateringRepo:        params.WateringRepo,
		userRepo:            params.UserRepo,
		settingsUsecase:     params.SettingsUsecase,
		fileStorage:         params.FileStorage,
		notificationService: params.NotificationService,
		eventPublisher:      params.EventPublisher,
		logger:              params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *wateringService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestWatering debits the watering price and creates the work item inside
// one transaction. The request enters the shared technician pool immediately,
// carrying a snapshot of the plant.
func (srv *wateringService) RequestWatering(ctx context.Context, input usecase.WateringRequestInput) (*usecase.WateringResult, error) {
	srv.log(ctx).Info("Starting watering request", slog.Any("plantID", input.PlantID), slog.Any("userID", input.RequesterID))

	if !input.Urgency.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("urgencia desconocida: " + string(input.Urgency))
	}

	settings, err := srv.settingsUsecase.EnsureInitialized(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load settings for watering request")
	}

	var request *entity.WateringRequest
	var balance int
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		plant, err := repoFactory.PlantRepo().FindByID(ctx, input.PlantID)
		if errors.Is(err, repository.ErrPlantNotFound) {
			return domainerrors.ErrPlantNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find plant")
		}

		newBalance, err := repoFactory.UserRepo().DebitCredits(ctx, input.RequesterID, settings.WaterPrice)
		if errors.Is(err, repository.ErrInsufficientCredits) {
			return domainerrors.NewInsufficientCreditsError(newBalance, settings.WaterPrice)
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to debit watering price")
		}
		balance = newBalance

		request = &entity.WateringRequest{
			PlantID:        plant.ID,
			RequesterID:    input.RequesterID,
			Urgency:        input.Urgency,
			Status:         entity.WateringStatusAssigned,
			Notes:          input.Notes,
			PlantName:      plant.CommonName,
			PlantLatitude:  plant.Latitude,
			PlantLongitude: plant.Longitude,
			PlantImageURL:  plant.ImageURL,
		}

		return repoFactory.WateringRepo().Create(ctx, request)
	})
	if err != nil {
		srv.log(ctx).Warn("Watering request failed", slog.Any("plantID", input.PlantID), slog.Any("userID", input.RequesterID), slog.Any("error", err))

		return nil, err
	}

	publishLedgerEvent(ctx, srv.log(ctx), srv.eventPublisher, input.RequesterID, -settings.WaterPrice, balance, service.LedgerReasonWatering, request.ID.String())

	srv.log(ctx).Info("Watering request created", slog.Any("requestID", request.ID), slog.Int("balance", balance))

	return &usecase.WateringResult{Request: request, Balance: balance}, nil
}

// UpdateStatus advances the request one step. The only transition reachable
// here is the claim; completion goes through SubmitReport because it needs the
// report payload.
func (srv *wateringService) UpdateStatus(ctx context.Context, requestID, technicianID uuid.UUID, next entity.WateringStatus) (*entity.WateringRequest, error) {
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("estado desconocido: " + string(next))
	}
	if next != entity.WateringStatusInProgress {
		return nil, domainerrors.ErrWateringInvalidTransition.WithDetails("la finalización requiere un reporte")
	}

	err := srv.wateringRepo.Claim(ctx, requestID, technicianID)
	switch {
	case errors.Is(err, repository.ErrWateringNotFound):
		return nil, domainerrors.ErrWateringNotFound
	case errors.Is(err, repository.ErrWateringStateConflict):
		return nil, domainerrors.ErrWateringInvalidTransition
	case err != nil:
		return nil, errors.Wrap(err, "failed to claim watering request")
	}

	srv.log(ctx).Info("Watering request claimed", slog.Any("requestID", requestID), slog.Any("technicianID", technicianID))

	return srv.GetRequest(ctx, requestID)
}

// SubmitReport completes the request with the technician's report. The photo
// is mandatory evidence and is uploaded before the transition; only the
// claiming technician can complete.
func (srv *wateringService) SubmitReport(ctx context.Context, input usecase.WateringReportInput) (*entity.WateringRequest, error) {
	if input.Photo == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("la foto del riego es obligatoria")
	}

	current, err := srv.GetRequest(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	if current.TechnicianID == nil || *current.TechnicianID != input.TechnicianID {
		return nil, domainerrors.ErrWateringNotClaimed
	}
	if !current.Status.CanTransitionTo(entity.WateringStatusCompleted) {
		return nil, domainerrors.ErrWateringInvalidTransition
	}

	photoKey := fmt.Sprintf("waterings/%s%s", uuid.New().String(), path.Ext(input.Photo.FileName))
	photoURL, err := srv.fileStorage.Upload(ctx, photoKey, input.Photo.ContentType, input.Photo.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload watering photo")
	}

	report := &entity.WateringReport{
		Condition:         input.Condition,
		WaterAmountLiters: input.WaterAmountLiters,
		DurationMinutes:   input.DurationMinutes,
		Notes:             input.Notes,
		PhotoURL:          photoURL,
	}

	err = srv.wateringRepo.Complete(ctx, input.RequestID, input.TechnicianID, report, time.Now())
	switch {
	case errors.Is(err, repository.ErrWateringNotFound):
		return nil, domainerrors.ErrWateringNotFound
	case errors.Is(err, repository.ErrWateringStateConflict):
		return nil, domainerrors.ErrWateringInvalidTransition
	case err != nil:
		return nil, errors.Wrap(err, "failed to complete watering request")
	}

	completed, err := srv.GetRequest(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}

	srv.notifyRequester(ctx, completed)

	srv.log(ctx).Info("Watering request completed", slog.Any("requestID", completed.ID), slog.Any("technicianID", input.TechnicianID))

	return completed, nil
}

// GetRequest retrieves one request.
func (srv *wateringService) GetRequest(ctx context.Context, id uuid.UUID) (*entity.WateringRequest, error) {
	request, err := srv.wateringRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrWateringNotFound) {
		return nil, domainerrors.ErrWateringNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find watering request")
	}

	return request, nil
}

// ListPending retrieves the unclaimed pool.
func (srv *wateringService) ListPending(ctx context.Context) ([]*entity.WateringRequest, error) {
	requests, err := srv.wateringRepo.ListPending(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending watering requests")
	}

	return requests, nil
}

// ListByRequester retrieves a citizen's own requests.
func (srv *wateringService) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.WateringRequest, error) {
	requests, err := srv.wateringRepo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list watering requests by requester")
	}

	return requests, nil
}

// ListByTechnician retrieves a technician's claimed requests.
func (srv *wateringService) ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*entity.WateringRequest, error) {
	requests, err := srv.wateringRepo.ListByTechnician(ctx, technicianID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list watering requests by technician")
	}

	return requests, nil
}

// notifyRequester sends a best-effort push to the citizen who requested the
// visit. Failures never surface to the technician.
func (srv *wateringService) notifyRequester(ctx context.Context, request *entity.WateringRequest) {
	requester, err := srv.userRepo.FindByID(ctx, request.RequesterID)
	if err != nil || requester.FCMToken == "" {
		return
	}

	err = srv.notificationService.Send(ctx, &service.PushNotification{
		Token: requester.FCMToken,
		Title: "Riego completado",
		Body:  fmt.Sprintf("Tu árbol %s fue regado", request.PlantName),
		Data: map[string]string{
			"type":      "watering_completed",
			"requestId": request.ID.String(),
		},
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to send watering push notification", slog.Any("requestID", request.ID), slog.Any("error", err))
	}
}

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

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager           repository.TransactionManager
	paymentRepo         repository.PaymentRepository
	userRepo            repository.UserRepository
	settingsUsecase     usecase.SettingsUsecase
	fileStorage         service.FileStorage
	notificationService service.NotificationService
	eventPublisher      service.EventPublisher
	logger              *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager           repository.TransactionManager
	PaymentRepo         repository.PaymentRepository
	UserRepo            repository.UserRepository
	SettingsUsecase     usecase.SettingsUsecase
	FileStorage         service.FileStorage
	NotificationService service.NotificationService
	EventPublisher      service.EventPublisher
	Logger              *slog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:           params.TxManager,
		paymentRepo:         params.PaymentRepo,
		userRepo:            params.UserRepo,
		settingsUsecase:     params.SettingsUsecase,
		fileStorage:         params.FileStorage,
		notificationService: params.NotificationService,
		eventPublisher:      params.EventPublisher,
		logger:              params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitPayment records a purchase claim in Pendiente with a snapshot of the
// package's terms, so a later catalog edit cannot change what an approval
// credits.
func (srv *paymentService) SubmitPayment(ctx context.Context, input usecase.SubmitPaymentInput) (*entity.Payment, error) {
	srv.log(ctx).Info("Submitting payment", slog.Any("userID", input.UserID), slog.String("packageID", input.PackageID))

	settings, err := srv.settingsUsecase.EnsureInitialized(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load settings for payment")
	}

	pkg := settings.FindPackage(input.PackageID)
	if pkg == nil {
		return nil, domainerrors.ErrPackageNotFound
	}

	payment := &entity.Payment{
		UserID: input.UserID,
		Package: entity.PackageSnapshot{
			PackageID: pkg.ID,
			Name:      pkg.Name,
			Credits:   pkg.Credits,
			Bonus:     pkg.Bonus,
			Price:     pkg.Price,
		},
		Status: entity.PaymentStatusPending,
	}

	if input.Proof != nil {
		key := fmt.Sprintf("payments/%s%s", uuid.New().String(), path.Ext(input.Proof.FileName))
		proofURL, err := srv.fileStorage.Upload(ctx, key, input.Proof.ContentType, input.Proof.Content)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload payment proof")
		}
		payment.ProofURL = proofURL
	}

	if err := srv.paymentRepo.Create(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to create payment")
	}

	srv.log(ctx).Info("Payment submitted", slog.Any("paymentID", payment.ID))

	return payment, nil
}

// DecidePayment applies the admin's ruling. The guarded status flip and the
// credit grant run in one transaction: if the buyer's account is gone the
// whole decision rolls back, and a second decision on the same payment is
// rejected before touching the ledger.
func (srv *paymentService) DecidePayment(ctx context.Context, paymentID, adminID uuid.UUID, decision entity.PaymentStatus) (*usecase.PaymentDecisionResult, error) {
	srv.log(ctx).Info("Deciding payment", slog.Any("paymentID", paymentID), slog.String("decision", string(decision)))

	if !decision.IsDecision() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("decisión desconocida: " + string(decision))
	}

	var payment *entity.Payment
	var balance int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.PaymentRepo()

		found, err := paymentRepo.FindByID(ctx, paymentID)
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return domainerrors.ErrPaymentNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find payment")
		}
		if found.IsDecided() {
			return domainerrors.ErrPaymentAlreadyDecided
		}

		err = paymentRepo.Decide(ctx, paymentID, decision, adminID, time.Now())
		switch {
		case errors.Is(err, repository.ErrPaymentNotFound):
			return domainerrors.ErrPaymentNotFound
		case errors.Is(err, repository.ErrPaymentAlreadyDecided):
			return domainerrors.ErrPaymentAlreadyDecided
		case err != nil:
			return errors.Wrap(err, "failed to decide payment")
		}

		if decision == entity.PaymentStatusApproved {
			newBalance, err := repoFactory.UserRepo().CreditCredits(ctx, found.UserID, found.Package.CreditAmount())
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}
			if err != nil {
				return errors.Wrap(err, "failed to credit approved payment")
			}
			balance = newBalance
		}

		payment = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Payment decision failed", slog.Any("paymentID", paymentID), slog.Any("error", err))

		return nil, err
	}

	now := time.Now()
	payment.Status = decision
	payment.DecidedBy = &adminID
	payment.DecidedAt = &now

	if decision == entity.PaymentStatusApproved {
		publishLedgerEvent(ctx, srv.log(ctx), srv.eventPublisher, payment.UserID, payment.Package.CreditAmount(), balance, service.LedgerReasonPaymentApproved, payment.ID.String())
	}
	srv.notifyBuyer(ctx, payment)

	srv.log(ctx).Info("Payment decided", slog.Any("paymentID", paymentID), slog.String("status", string(decision)))

	return &usecase.PaymentDecisionResult{Payment: payment, Balance: balance}, nil
}

// GetPayment retrieves one payment.
func (srv *paymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPaymentNotFound) {
		return nil, domainerrors.ErrPaymentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return payment, nil
}

// ListPayments retrieves payments, optionally filtered by status.
func (srv *paymentService) ListPayments(ctx context.Context, status entity.PaymentStatus) ([]*entity.Payment, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("estado desconocido: " + string(status))
	}

	payments, err := srv.paymentRepo.List(ctx, repository.PaymentFilter{Status: status})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

// ListUserPayments retrieves one user's payment history.
func (srv *paymentService) ListUserPayments(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments by user")
	}

	return payments, nil
}

// notifyBuyer sends a best-effort push about the decision.
func (srv *paymentService) notifyBuyer(ctx context.Context, payment *entity.Payment) {
	buyer, err := srv.userRepo.FindByID(ctx, payment.UserID)
	if err != nil || buyer.FCMToken == "" {
		return
	}

	title := "Pago aprobado"
	body := fmt.Sprintf("Se acreditaron %d créditos", payment.Package.CreditAmount())
	if payment.Status == entity.PaymentStatusRejected {
		title = "Pago rechazado"
		body = "Tu comprobante fue rechazado, revisá los datos e intentá de nuevo"
	}

	err = srv.notificationService.Send(ctx, &service.PushNotification{
		Token: buyer.FCMToken,
		Title: title,
		Body:  body,
		Data: map[string]string{
			"type":      "payment_decided",
			"paymentId": payment.ID.String(),
			"status":    string(payment.Status),
		},
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to send payment push notification", slog.Any("paymentID", payment.ID), slog.Any("error", err))
	}
}

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

type paymentServiceFixture struct {
	txManager      *mockRepo.MockTransactionManager
	paymentRepo    *mockRepo.MockPaymentRepository
	userRepo       *mockRepo.MockUserRepository
	settingsRepo   *mockRepo.MockSettingsRepository
	fileStorage    *mockSvc.MockFileStorage
	notifications  *mockSvc.MockNotificationService
	eventPublisher *mockSvc.MockEventPublisher
	service        usecase.PaymentUsecase
}

func createTestPaymentService(t *testing.T) *paymentServiceFixture {
	t.Helper()

	f := &paymentServiceFixture{
		txManager:      mockRepo.NewMockTransactionManager(t),
		paymentRepo:    mockRepo.NewMockPaymentRepository(t),
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

	f.service = NewPaymentService(PaymentServiceParams{
		TxManager:           f.txManager,
		PaymentRepo:         f.paymentRepo,
		UserRepo:            f.userRepo,
		SettingsUsecase:     settingsUsecase,
		FileStorage:         f.fileStorage,
		NotificationService: f.notifications,
		EventPublisher:      f.eventPublisher,
		Logger:              newDiscardLogger(),
	})

	return f
}

func pendingPayment(id, userID uuid.UUID) *entity.Payment {
	return &entity.Payment{
		ID:     id,
		UserID: userID,
		Package: entity.PackageSnapshot{
			PackageID: "basico",
			Name:      "Básico",
			Credits:   25,
			Bonus:     3,
		},
		Status: entity.PaymentStatusPending,
	}
}

func TestPaymentService_SubmitPayment_SnapshotsPackage(t *testing.T) {
	f := createTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.settingsRepo.EXPECT().Get(ctx).Return(testSettings(), nil)
	f.fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return("https://blob/payments/comprobante.jpg", nil)
	f.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(nil)

	payment, err := f.service.SubmitPayment(ctx, usecase.SubmitPaymentInput{
		UserID:    userID,
		PackageID: "basico",
		Proof: &usecase.FileUpload{
			FileName:    "comprobante.jpg",
			ContentType: "image/jpeg",
			Content:     strings.NewReader("jpeg-bytes"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, payment.Status)
	assert.Equal(t, "basico", payment.Package.PackageID)
	assert.Equal(t, 25, payment.Package.Credits)
	assert.Equal(t, 3, payment.Package.Bonus)
	assert.Equal(t, "https://blob/payments/comprobante.jpg", payment.ProofURL)
}

func TestPaymentService_SubmitPayment_UnknownPackage(t *testing.T) {
	f := createTestPaymentService(t)
	ctx := context.Background()

	f.settingsRepo.EXPECT().Get(ctx).Return(testSettings(), nil)

	_, err := f.service.SubmitPayment(ctx, usecase.SubmitPaymentInput{
		UserID:    uuid.New(),
		PackageID: "inexistente",
	})
	require.ErrorIs(t, err, domainerrors.ErrPackageNotFound)
}

func TestPaymentService_DecidePayment_ApprovalCreditsSnapshot(t *testing.T) {
	f := createTestPaymentService(t)
	ctx := context.Background()
	paymentID := uuid.New()
	adminID := uuid.New()
	buyerID := uuid.New()

	payment := pendingPayment(paymentID, buyerID)

	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
	txPaymentRepo.EXPECT().
		Decide(ctx, paymentID, entity.PaymentStatusApproved, adminID, mock.AnythingOfType("time.Time")).
		Return(nil)
	// 25 base credits plus 3 bonus on a balance of 10.
	txUserRepo.EXPECT().CreditCredits(ctx, buyerID, 28).Return(38, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PaymentRepo().Return(txPaymentRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	f.eventPublisher.EXPECT().
		PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).
		Run(func(_ context.Context, event *service.LedgerEvent) {
			assert.Equal(t, buyerID, event.UserID)
			assert.Equal(t, 28, event.Delta)
			assert.Equal(t, 38, event.Balance)
			assert.Equal(t, service.LedgerReasonPaymentApproved, event.Reason)
		}).
		Return(nil)

	f.userRepo.EXPECT().
		FindByID(ctx, buyerID).
		Return(&entity.User{ID: buyerID, FCMToken: "fcm-token"}, nil)
	f.notifications.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.PushNotification")).
		Run(func(_ context.Context, notification *service.PushNotification) {
			assert.Equal(t, "Pago aprobado", notification.Title)
		}).
		Return(nil)

	result, err := f.service.DecidePayment(ctx, paymentID, adminID, entity.PaymentStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, 38, result.Balance)
	assert.Equal(t, entity.PaymentStatusApproved, result.Payment.Status)
	require.NotNil(t, result.Payment.DecidedBy)
	assert.Equal(t, adminID, *result.Payment.DecidedBy)
}

func TestPaymentService_DecidePayment_RejectionHasNoLedgerEffect(t *testing.T) {
	f := createTestPaymentService(t)
	ctx := context.Background()
	paymentID := uuid.New()
	adminID := uuid.New()
	buyerID := uuid.New()

	payment := pendingPayment(paymentID, buyerID)

	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(payment, nil)
	txPaymentRepo.EXPECT().
		Decide(ctx, paymentID, entity.PaymentStatusRejected, adminID, mock.AnythingOfType("time.Time")).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PaymentRepo().Return(txPaymentRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	f.userRepo.EXPECT().
		FindByID(ctx, buyerID).
		Return(&entity.User{ID: buyerID, FCMToken: "fcm-token"}, nil)
	f.notifications.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.PushNotification")).
		Run(func(_ context.Context, notification *service.PushNotification) {
			assert.Equal(t, "Pago rechazado", notification.Title)
		}).
		Return(nil)

	result, err := f.service.DecidePayment(ctx, paymentID, adminID, entity.PaymentStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Balance)
	assert.Equal(t, entity.PaymentStatusRejected, result.Payment.Status)
}

func TestPaymentService_DecidePayment_SecondDecisionRejected(t *testing.T) {
	f := createTestPaymentService(t)
	ctx := context.Background()
	paymentID := uuid.New()
	adminID := uuid.New()
	buyerID := uuid.New()

	// A decided payment is refused before the status write is even attempted.
	decided := pendingPayment(paymentID, buyerID)
	decided.Status = entity.PaymentStatusApproved

	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(decided, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PaymentRepo().Return(txPaymentRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := f.service.DecidePayment(ctx, paymentID, adminID, entity.PaymentStatusRejected)
	require.ErrorIs(t, err, domainerrors.ErrPaymentAlreadyDecided)
}

func TestPaymentService_DecidePayment_RacingDecisionLosesOnGuard(t *testing.T) {
	f := createTestPaymentService(t)
	ctx := context.Background()
	paymentID := uuid.New()
	adminID := uuid.New()
	buyerID := uuid.New()

	// The payment still reads as pending, but another admin's decision commits
	// first; the guarded status flip reports the conflict.
	txPaymentRepo := mockRepo.NewMockPaymentRepository(t)
	txPaymentRepo.EXPECT().FindByID(ctx, paymentID).Return(pendingPayment(paymentID, buyerID), nil)
	txPaymentRepo.EXPECT().
		Decide(ctx, paymentID, entity.PaymentStatusRejected, adminID, mock.AnythingOfType("time.Time")).
		Return(repository.ErrPaymentAlreadyDecided)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().PaymentRepo().Return(txPaymentRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := f.service.DecidePayment(ctx, paymentID, adminID, entity.PaymentStatusRejected)
	require.ErrorIs(t, err, domainerrors.ErrPaymentAlreadyDecided)
}

func TestPaymentService_DecidePayment_PendingIsNotADecision(t *testing.T) {
	f := createTestPaymentService(t)

	_, err := f.service.DecidePayment(context.Background(), uuid.New(), uuid.New(), entity.PaymentStatusPending)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestPaymentService_ListPayments_RejectsUnknownStatus(t *testing.T) {
	f := createTestPaymentService(t)

	_, err := f.service.ListPayments(context.Background(), entity.PaymentStatus("Dudoso"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestPaymentService_ListPayments_FiltersByStatus(t *testing.T) {
	f := createTestPaymentService(t)
	ctx := context.Background()

	pending := []*entity.Payment{pendingPayment(uuid.New(), uuid.New())}
	f.paymentRepo.EXPECT().
		List(ctx, repository.PaymentFilter{Status: entity.PaymentStatusPending}).
		Return(pending, nil)

	payments, err := f.service.ListPayments(ctx, entity.PaymentStatusPending)
	require.NoError(t, err)
	assert.Equal(t, pending, payments)
}

func TestPaymentService_GetPayment_NotFound(t *testing.T) {
	f := createTestPaymentService(t)
	ctx := context.Background()
	paymentID := uuid.New()

	f.paymentRepo.EXPECT().FindByID(ctx, paymentID).Return(nil, repository.ErrPaymentNotFound)

	_, err := f.service.GetPayment(ctx, paymentID)
	require.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}

package impl

import (
	"context"
	"errors"
	"testing"
	"time"

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

type accountServiceFixture struct {
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	settingsRepo     *mockRepo.MockSettingsRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	eventPublisher   *mockSvc.MockEventPublisher
	service          usecase.AccountUsecase
}

func createTestAccountService(t *testing.T) *accountServiceFixture {
	t.Helper()

	f := &accountServiceFixture{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		settingsRepo:     mockRepo.NewMockSettingsRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		eventPublisher:   mockSvc.NewMockEventPublisher(t),
	}

	settingsUsecase := NewSettingsService(SettingsServiceParams{
		SettingsRepo:  f.settingsRepo,
		FileStorage:   mockSvc.NewMockFileStorage(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		Config:        &config.Config{},
		Logger:        newDiscardLogger(),
	})

	f.service = NewAccountService(AccountServiceParams{
		TxManager:        f.txManager,
		UserRepo:         f.userRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		SettingsUsecase:  settingsUsecase,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		EventPublisher:   f.eventPublisher,
		Logger:           newDiscardLogger(),
	})

	return f
}

// expectSession wires up the token issuance that follows a successful
// registration or login.
func (f *accountServiceFixture) expectSession(ctx context.Context, userID uuid.UUID, role entity.Role) *service.TokenPair {
	tokens := &service.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}
	f.tokenService.EXPECT().GenerateTokens(userID, role).Return(tokens, nil)
	f.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	f.tokenService.EXPECT().RefreshTokenDuration().Return(time.Hour)
	f.refreshTokenRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	return tokens
}

func TestAccountService_Register_GrantsWelcomeCredits(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.settingsRepo.EXPECT().Get(ctx).Return(testSettings(), nil)
	f.hasher.EXPECT().Hash("secret123").Return("hashed-password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	txUserRepo.EXPECT().CreditCredits(ctx, userID, 10).Return(10, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	f.eventPublisher.EXPECT().
		PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).
		Run(func(_ context.Context, event *service.LedgerEvent) {
			assert.Equal(t, userID, event.UserID)
			assert.Equal(t, 10, event.Delta)
			assert.Equal(t, 10, event.Balance)
			assert.Equal(t, service.LedgerReasonWelcome, event.Reason)
		}).
		Return(nil)

	tokens := f.expectSession(ctx, userID, entity.RoleClient)

	result, err := f.service.Register(ctx, usecase.RegisterInput{
		Email:    "vecino@example.com",
		Name:     "Vecino",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, result.User.ID)
	assert.Equal(t, entity.RoleClient, result.User.Role)
	assert.Equal(t, 10, result.User.Credits)
	assert.Equal(t, tokens, result.Tokens)
}

func TestAccountService_Register_NonClientSkipsWelcomeCredits(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.settingsRepo.EXPECT().Get(ctx).Return(testSettings(), nil)
	f.hasher.EXPECT().Hash("secret123").Return("hashed-password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	f.expectSession(ctx, userID, entity.RoleTechnician)

	result, err := f.service.Register(ctx, usecase.RegisterInput{
		Email:    "tecnico@example.com",
		Name:     "Técnico",
		Password: "secret123",
		Role:     entity.RoleTechnician,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.User.Credits)
}

func TestAccountService_Register_RejectsUnknownRole(t *testing.T) {
	f := createTestAccountService(t)

	_, err := f.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "vecino@example.com",
		Name:     "Vecino",
		Password: "secret123",
		Role:     entity.Role("super"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAccountService_Login_Success(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "vecino@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleClient,
		Credits:      40,
	}

	f.userRepo.EXPECT().FindByEmail(ctx, "vecino@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("secret123", "hashed-password").Return(true)
	tokens := f.expectSession(ctx, user.ID, entity.RoleClient)

	result, err := f.service.Login(ctx, "vecino@example.com", "secret123")
	require.NoError(t, err)
	assert.Same(t, user, result.User)
	assert.Equal(t, tokens, result.Tokens)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed-password"}
	f.userRepo.EXPECT().FindByEmail(ctx, "vecino@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("wrong", "hashed-password").Return(false)

	_, err := f.service.Login(ctx, "vecino@example.com", "wrong")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "nadie@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Login(ctx, "nadie@example.com", "secret123")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Refresh_RotatesToken(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Role: entity.RoleClient}
	stored := &entity.RefreshToken{UserID: user.ID, TokenHash: "old-hash"}
	newTokens := &service.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}

	f.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: user.ID, Role: user.Role, Type: "refresh"}, nil)
	f.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	f.tokenService.EXPECT().GenerateTokens(user.ID, user.Role).Return(newTokens, nil)
	f.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	f.tokenService.EXPECT().RefreshTokenDuration().Return(time.Hour)

	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	txRefreshRepo.EXPECT().FindByHash(ctx, "old-hash").Return(stored, nil)
	txRefreshRepo.EXPECT().DeleteByHash(ctx, "old-hash").Return(nil)
	txRefreshRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, token *entity.RefreshToken) {
			assert.Equal(t, user.ID, token.UserID)
			assert.Equal(t, "new-hash", token.TokenHash)
		}).
		Return(nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	result, err := f.service.Refresh(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Same(t, user, result.User)
	assert.Equal(t, newTokens, result.Tokens)
}

func TestAccountService_Refresh_FailedRotationStaysTransactional(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Role: entity.RoleClient}
	stored := &entity.RefreshToken{UserID: user.ID, TokenHash: "old-hash"}

	f.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: user.ID, Role: user.Role, Type: "refresh"}, nil)
	f.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	f.tokenService.EXPECT().GenerateTokens(user.ID, user.Role).Return(nil, errors.New("signing key unavailable"))

	// The delete runs on the factory's transaction-bound repository, so when
	// token generation fails the session row survives the rollback.
	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	txRefreshRepo.EXPECT().FindByHash(ctx, "old-hash").Return(stored, nil)
	txRefreshRepo.EXPECT().DeleteByHash(ctx, "old-hash").Return(nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := f.service.Refresh(ctx, "old-refresh")
	require.Error(t, err)
}

func TestAccountService_Refresh_UnknownToken(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.EXPECT().
		ValidateRefreshToken("stale-refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	f.tokenService.EXPECT().HashToken("stale-refresh").Return("stale-hash")

	txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	txRefreshRepo.EXPECT().FindByHash(ctx, "stale-hash").Return(nil, repository.ErrRefreshTokenNotFound)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().RefreshTokenRepo().Return(txRefreshRepo)
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := f.service.Refresh(ctx, "stale-refresh")
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAccountService_Logout_UnknownTokenIsNotAnError(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()

	f.tokenService.EXPECT().HashToken("gone-refresh").Return("gone-hash")
	f.refreshTokenRepo.EXPECT().DeleteByHash(ctx, "gone-hash").Return(repository.ErrRefreshTokenNotFound)

	err := f.service.Logout(ctx, "gone-refresh")
	require.NoError(t, err)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.GetProfile(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_UpdateFCMToken(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Role: entity.RoleClient}
	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.userRepo.EXPECT().Update(ctx, user).Return(nil)

	err := f.service.UpdateFCMToken(ctx, user.ID, "fcm-token-abc")
	require.NoError(t, err)
	assert.Equal(t, "fcm-token-abc", user.FCMToken)
}

func TestAccountService_UpdateUserRole(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Role: entity.RoleClient}
	f.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	f.userRepo.EXPECT().Update(ctx, user).Return(nil)

	updated, err := f.service.UpdateUserRole(ctx, user.ID, entity.RoleTechnician)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTechnician, updated.Role)
}

func TestAccountService_UpdateUserRole_RejectsUnknownRole(t *testing.T) {
	f := createTestAccountService(t)

	_, err := f.service.UpdateUserRole(context.Background(), uuid.New(), entity.Role("super"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAccountService_AdjustUserCredits_GrantRoutesThroughLedger(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().CreditCredits(ctx, userID, 15).Return(55, nil)
	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Credits: 55}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	f.eventPublisher.EXPECT().
		PublishLedgerEvent(ctx, mock.AnythingOfType("*service.LedgerEvent")).
		Run(func(_ context.Context, event *service.LedgerEvent) {
			assert.Equal(t, userID, event.UserID)
			assert.Equal(t, 15, event.Delta)
			assert.Equal(t, 55, event.Balance)
			assert.Equal(t, service.LedgerReasonAdminAdjustment, event.Reason)
		}).
		Return(nil)

	user, err := f.service.AdjustUserCredits(ctx, userID, 15)
	require.NoError(t, err)
	assert.Equal(t, 55, user.Credits)
}

func TestAccountService_AdjustUserCredits_RevocationGuardedByBalance(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().DebitCredits(ctx, userID, 50).Return(20, repository.ErrInsufficientCredits)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	_, err := f.service.AdjustUserCredits(ctx, userID, -50)
	require.Error(t, err)

	var creditsErr *domainerrors.InsufficientCreditsError
	require.ErrorAs(t, err, &creditsErr)
	assert.Equal(t, 20, creditsErr.Balance)
	assert.Equal(t, 50, creditsErr.Required)
}

func TestAccountService_AdjustUserCredits_RejectsZeroDelta(t *testing.T) {
	f := createTestAccountService(t)

	_, err := f.service.AdjustUserCredits(context.Background(), uuid.New(), 0)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAccountService_DeleteUser_RevokesSessions(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().Delete(ctx, userID).Return(nil)
	f.refreshTokenRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

	err := f.service.DeleteUser(ctx, userID)
	require.NoError(t, err)
}

func TestAccountService_DeleteUser_NotFound(t *testing.T) {
	f := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserNotFound)

	err := f.service.DeleteUser(ctx, userID)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

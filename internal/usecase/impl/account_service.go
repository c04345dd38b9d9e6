// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
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

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	settingsUsecase  usecase.SettingsUsecase
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	eventPublisher   service.EventPublisher
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	SettingsUsecase  usecase.SettingsUsecase
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	EventPublisher   service.EventPublisher
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		settingsUsecase:  params.SettingsUsecase,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		eventPublisher:   params.EventPublisher,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and grants the welcome credits in one
// transaction, so no user ever exists without the opening balance.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthResult, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	role := input.Role
	if role == "" {
		role = entity.RoleClient
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rol desconocido: " + string(role))
	}

	settings, err := srv.settingsUsecase.EnsureInitialized(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load settings for registration")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Role:         role,
	}

	var balance int
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := userRepo.Create(ctx, newUser); err != nil {
			return err
		}

		if settings.WelcomeCredits > 0 && role == entity.RoleClient {
			newBalance, err := userRepo.CreditCredits(ctx, newUser.ID, settings.WelcomeCredits)
			if err != nil {
				return errors.Wrap(err, "failed to grant welcome credits")
			}
			balance = newBalance
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}
	newUser.Credits = balance

	if settings.WelcomeCredits > 0 && role == entity.RoleClient {
		publishLedgerEvent(ctx, srv.log(ctx), srv.eventPublisher, newUser.ID, settings.WelcomeCredits, balance, service.LedgerReasonWelcome, newUser.ID.String())
	}

	tokens, err := srv.issueSession(ctx, newUser)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthResult{User: newUser, Tokens: tokens}, nil
}

// Login verifies credentials and issues a token pair.
func (srv *accountService) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := srv.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthResult{User: user, Tokens: tokens}, nil
}

// Refresh rotates the refresh token: the old session row is replaced by a new
// one inside a transaction, so a token can never be redeemed twice.
func (srv *accountService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthResult, error) {
	srv.log(ctx).Debug("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)

	var user *entity.User
	var tokens *service.TokenPair
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshTokenRepo := repoFactory.RefreshTokenRepo()

		stored, err := refreshTokenRepo.FindByHash(ctx, tokenHash)
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrRefreshTokenInvalid
		}
		if err != nil {
			return errors.Wrap(err, "failed to find refresh token")
		}

		user, err = repoFactory.UserRepo().FindByID(ctx, stored.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrRefreshTokenInvalid
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user for refresh token")
		}

		if err := refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to rotate refresh token")
		}

		tokens, err = srv.tokenService.GenerateTokens(user.ID, user.Role)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		return refreshTokenRepo.Create(ctx, &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: srv.tokenService.HashToken(tokens.RefreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh session", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return nil, err
	}

	return &usecase.AuthResult{User: user, Tokens: tokens}, nil
}

// Logout revokes one refresh token. An unknown token is not an error; the
// session is gone either way.
func (srv *accountService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := srv.tokenService.HashToken(refreshToken)

	err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash)
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetProfile retrieves the user's profile including the credit balance.
func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateFCMToken stores the device push token for the user.
func (srv *accountService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	user.FCMToken = token
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// ListUsers retrieves every account.
func (srv *accountService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUserRole changes a user's role.
func (srv *accountService) UpdateUserRole(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rol desconocido: " + string(role))
	}

	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user role")
	}

	srv.log(ctx).Info("User role updated", slog.Any("userID", userID), slog.String("role", string(role)))

	return user, nil
}

// AdjustUserCredits applies an admin credit adjustment through the ledger, so
// the movement is guarded and published like any other balance change.
func (srv *accountService) AdjustUserCredits(ctx context.Context, userID uuid.UUID, delta int) (*entity.User, error) {
	if delta == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("el ajuste de créditos no puede ser cero")
	}

	var user *entity.User
	var balance int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var err error
		if delta > 0 {
			balance, err = userRepo.CreditCredits(ctx, userID, delta)
		} else {
			balance, err = userRepo.DebitCredits(ctx, userID, -delta)
		}
		if errors.Is(err, repository.ErrInsufficientCredits) {
			return domainerrors.NewInsufficientCreditsError(balance, -delta)
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to adjust credits")
		}

		user, err = userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to reload user after credit adjustment")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Credit adjustment failed", slog.Any("userID", userID), slog.Int("delta", delta), slog.Any("error", err))

		return nil, err
	}

	publishLedgerEvent(ctx, srv.log(ctx), srv.eventPublisher, userID, delta, balance, service.LedgerReasonAdminAdjustment, userID.String())

	srv.log(ctx).Info("User credits adjusted", slog.Any("userID", userID), slog.Int("delta", delta), slog.Int("balance", balance))

	return user, nil
}

// DeleteUser removes an account and all of its sessions.
func (srv *accountService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	err := srv.userRepo.Delete(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	if err := srv.refreshTokenRepo.DeleteByUserID(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to revoke sessions of deleted user", slog.Any("userID", userID), slog.Any("error", err))
	}

	return nil
}

// issueSession generates a token pair and persists the refresh half.
func (srv *accountService) issueSession(ctx context.Context, user *entity.User) (*service.TokenPair, error) {
	tokens, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	err = srv.refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(tokens.RefreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	return tokens, nil
}

// Package usecase defines the application's use case interfaces and the DTOs
// that cross the delivery boundary.
package usecase

import (
	"context"

	"arbolitos/internal/domain/entity"
	"arbolitos/internal/domain/service"

	"github.com/google/uuid"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Role     entity.Role // empty defaults to client
}

// AuthResult is returned by Register, Login and Refresh.
type AuthResult struct {
	User   *entity.User
	Tokens *service.TokenPair
}

// AccountUsecase defines the interface for registration, sessions and user
// administration use cases.
type AccountUsecase interface {
	// Register creates a user and grants the configured welcome credits in
	// the same transaction.
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Refresh rotates a refresh token into a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)

	// Logout revokes one refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GetProfile retrieves the user's profile including the credit balance.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateFCMToken stores the device push token for the user.
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error

	// ListUsers retrieves every account. Admin only.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUserRole changes a user's role. Admin only.
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.User, error)

	// AdjustUserCredits grants or revokes credits through the ledger. Admin
	// only. A negative delta is subject to the balance guard.
	AdjustUserCredits(ctx context.Context, userID uuid.UUID, delta int) (*entity.User, error)

	// DeleteUser removes an account. Admin only.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

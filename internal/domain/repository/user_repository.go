// Package repository defines the persistence contracts the use cases depend
// on, keeping them free of any database driver.
package repository

import (
	"context"

	"arbolitos/internal/domain/entity"
	"arbolitos/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by repository implementations.
var (
	ErrUserNotFound = errors.New("user not found")

	// ErrInsufficientCredits is returned by DebitCredits when the guarded
	// update matches no row because the balance does not cover the amount.
	ErrInsufficientCredits = errors.New("insufficient credits")
)

// UserRepository manages users and their credit balances. The credit methods
// are the only writers of User.Credits; both are guarded at the database so
// concurrent ledger operations serialize on the user row instead of losing
// updates.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DebitCredits subtracts amount from the user's balance if and only if
	// the balance covers it, returning the new balance. Returns
	// ErrInsufficientCredits when it does not, ErrUserNotFound when the user
	// is absent.
	DebitCredits(ctx context.Context, id uuid.UUID, amount int) (int, error)

	// CreditCredits adds a non-negative amount to the user's balance and
	// returns the new balance.
	CreditCredits(ctx context.Context, id uuid.UUID, amount int) (int, error)
}

// RefreshTokenRepository persists login sessions by token hash.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	DeleteByHash(ctx context.Context, tokenHash string) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// ErrRefreshTokenNotFound is returned when a session is absent or expired.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

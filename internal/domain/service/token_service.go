package service

import (
	"time"

	"arbolitos/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims carries the identity extracted from a verified token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
	Type   string
}

// TokenPair is what a successful login or refresh hands back.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService issues and verifies the JWT pair used by the HTTP layer.
type TokenService interface {
	GenerateTokens(userID uuid.UUID, role entity.Role) (*TokenPair, error)
	ValidateAccessToken(token string) (*Claims, error)
	ValidateRefreshToken(token string) (*Claims, error)

	// HashToken returns the digest under which refresh tokens are persisted,
	// so a database leak does not expose usable tokens.
	HashToken(token string) string

	RefreshTokenDuration() time.Duration
}

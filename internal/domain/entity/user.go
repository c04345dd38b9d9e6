package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a person registered with the program: a citizen, a field
// technician or a municipal administrator. Credits are the currency citizens
// spend on adoptions and watering visits; the balance is only ever mutated by
// ledger operations and never goes negative.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	Credits      int
	FCMToken     string // optional push token for the user's device
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken represents a persisted login session. Only the SHA-256 hash of
// the token is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

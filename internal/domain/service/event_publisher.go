package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LedgerEvent records one applied balance change for downstream consumers.
type LedgerEvent struct {
	EventID    uuid.UUID `json:"eventId"`
	UserID     uuid.UUID `json:"userId"`
	Delta      int       `json:"delta"`
	Balance    int       `json:"balance"`
	Reason     string    `json:"reason"`
	Reference  string    `json:"reference"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Ledger event reasons.
const (
	LedgerReasonWelcome         = "welcome"
	LedgerReasonAdoption        = "adoption"
	LedgerReasonWatering        = "watering"
	LedgerReasonPaymentApproved = "payment_approved"
	LedgerReasonAdminAdjustment = "admin_adjustment"
)

// EventPublisher publishes ledger events after the owning transaction has
// committed. Publishing is best-effort; failures are logged, not returned to
// the caller of the original operation.
type EventPublisher interface {
	PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error
	Close() error
}

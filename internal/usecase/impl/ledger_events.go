package impl

import (
	"context"
	"log/slog"
	"time"

	"arbolitos/internal/domain/service"

	"github.com/google/uuid"
)

// publishLedgerEvent emits a ledger event after the owning transaction has
// committed. Failures are logged only; the balance change already happened.
func publishLedgerEvent(
	ctx context.Context,
	logger *slog.Logger,
	publisher service.EventPublisher,
	userID uuid.UUID,
	delta, balance int,
	reason, reference string,
) {
	event := &service.LedgerEvent{
		EventID:    uuid.New(),
		UserID:     userID,
		Delta:      delta,
		Balance:    balance,
		Reason:     reason,
		Reference:  reference,
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishLedgerEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish ledger event",
			slog.String("reason", reason),
			slog.Any("userID", userID),
			slog.Any("error", err),
		)
	}
}

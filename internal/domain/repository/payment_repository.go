package repository

import (
	"context"
	"time"

	"arbolitos/internal/domain/entity"
	"arbolitos/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrPaymentAlreadyDecided is returned by Decide when the payment has
	// left "Pendiente" already, so a decision is applied at most once.
	ErrPaymentAlreadyDecided = errors.New("payment already decided")
)

// PaymentFilter narrows payment listings.
type PaymentFilter struct {
	Status entity.PaymentStatus
}

// PaymentRepository manages credit-package purchase claims.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)

	// Decide flips "Pendiente" to the given terminal status in one guarded
	// statement, recording the deciding admin.
	Decide(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, decidedBy uuid.UUID, at time.Time) error
}

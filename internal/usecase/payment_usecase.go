package usecase

import (
	"context"

	"arbolitos/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitPaymentInput carries a citizen's purchase claim.
type SubmitPaymentInput struct {
	UserID    uuid.UUID
	PackageID string
	Proof     *FileUpload
}

// PaymentDecisionResult reports a decision. Balance is only meaningful for
// approvals, where it is the buyer's new balance.
type PaymentDecisionResult struct {
	Payment *entity.Payment
	Balance int
}

// PaymentUsecase defines the interface for credit purchase use cases.
type PaymentUsecase interface {
	// SubmitPayment records a purchase claim with its proof image, pending
	// admin verification.
	SubmitPayment(ctx context.Context, input SubmitPaymentInput) (*entity.Payment, error)

	// DecidePayment approves or rejects a pending payment. An approval
	// credits the snapshotted package amount to the buyer in the same
	// transaction; either way the decision is applied at most once.
	DecidePayment(ctx context.Context, paymentID, adminID uuid.UUID, decision entity.PaymentStatus) (*PaymentDecisionResult, error)

	// GetPayment retrieves one payment.
	GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// ListPayments retrieves payments matching the filter. Admin only.
	ListPayments(ctx context.Context, status entity.PaymentStatus) ([]*entity.Payment, error)

	// ListUserPayments retrieves one user's payment history.
	ListUserPayments(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)
}

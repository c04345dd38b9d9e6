package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the state of a credit-package purchase claim.
// The values are the Spanish strings the program has always exposed to its
// frontend, kept for wire compatibility.
type PaymentStatus string

const (
	// PaymentStatusPending is the initial state of every submission.
	PaymentStatusPending PaymentStatus = "Pendiente"
	// PaymentStatusApproved credits the package to the user. Terminal.
	PaymentStatusApproved PaymentStatus = "Aprobado"
	// PaymentStatusRejected has no ledger effect. Terminal.
	PaymentStatusRejected PaymentStatus = "Rechazado"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusRejected:
		return true
	default:
		return false
	}
}

// IsDecision reports whether the status is a valid admin decision.
func (s PaymentStatus) IsDecision() bool {
	return s == PaymentStatusApproved || s == PaymentStatusRejected
}

// PackageSnapshot embeds the purchased package's terms into the payment so a
// later price change cannot alter what an approval credits.
type PackageSnapshot struct {
	PackageID string
	Name      string
	Credits   int
	Bonus     int
	Price     decimal.Decimal
}

// CreditAmount is what an approval grants: base credits plus bonus.
func (p PackageSnapshot) CreditAmount() int {
	return p.Credits + p.Bonus
}

// Payment is a citizen's claim of having paid for a credit package via QR
// transfer, pending manual verification of the uploaded proof.
type Payment struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Package  PackageSnapshot
	ProofURL string
	Status   PaymentStatus

	// DecidedBy and DecidedAt are set exactly once, by the admin decision.
	DecidedBy *uuid.UUID
	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDecided reports whether an admin has already ruled on the payment.
func (p *Payment) IsDecided() bool {
	return p.Status != PaymentStatusPending
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentModel is the GORM-specific struct for the 'payments' table.
// The package columns are a snapshot of the purchased package, so an approved
// payment always credits the amount the buyer saw even if the catalog changes.
type PaymentModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`

	PackageID      string          `gorm:"type:varchar(64);not null"`
	PackageName    string          `gorm:"type:varchar(255);not null"`
	PackageCredits int             `gorm:"not null"`
	PackageBonus   int             `gorm:"not null;default:0"`
	PackagePrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	ProofURL  string     `gorm:"type:text"`
	Status    string     `gorm:"type:varchar(32);not null;index"`
	DecidedBy *uuid.UUID `gorm:"type:uuid"`
	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

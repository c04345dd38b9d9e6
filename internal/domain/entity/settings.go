package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditPackage is a purchasable bundle of credits shown on the pricing page.
type CreditPackage struct {
	ID            string
	Name          string
	Credits       int
	Bonus         int
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Popular       bool
}

// Settings is the program-wide pricing singleton. It is lazily created with
// defaults on first read and only mutated by administrators.
type Settings struct {
	AdoptionPrice  int // credits to adopt a tree when the plant has no override
	WaterPrice     int // credits per watering request
	WelcomeCredits int // credits granted at registration
	Currency       string

	// PaymentAccount is the transfer alias/CBU encoded into the fallback QR.
	PaymentAccount string

	// PaymentQRURL / PaymentQRKey reference the admin-uploaded QR image in
	// blob storage. Only one image is retained at a time.
	PaymentQRURL string
	PaymentQRKey string

	Packages []CreditPackage

	UpdatedAt time.Time
}

// FindPackage returns the package with the given id, or nil.
func (s *Settings) FindPackage(id string) *CreditPackage {
	for i := range s.Packages {
		if s.Packages[i].ID == id {
			return &s.Packages[i]
		}
	}

	return nil
}

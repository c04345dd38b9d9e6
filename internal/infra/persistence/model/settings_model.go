package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// settingsSingletonKey is the fixed primary key of the one settings row. The
// primary key constraint is what makes concurrent initialization safe.
const SettingsSingletonKey = "default"

// CreditPackageJSON is one entry of the package list stored in the settings
// row's jsonb column.
type CreditPackageJSON struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Credits       int              `json:"credits"`
	Bonus         int              `json:"bonus"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Popular       bool             `json:"popular"`
}

// CreditPackageList marshals the package list to and from jsonb.
type CreditPackageList []CreditPackageJSON

// Value implements driver.Valuer.
func (l CreditPackageList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *CreditPackageList) Scan(value any) error {
	if value == nil {
		*l = nil

		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported type for credit package list: %T", value)
	}

	return json.Unmarshal(raw, l)
}

// SettingsModel is the GORM-specific struct for the 'settings' table. Exactly
// one row exists, keyed by SettingsSingletonKey.
type SettingsModel struct {
	Key            string `gorm:"type:varchar(32);primary_key"`
	AdoptionPrice  int    `gorm:"not null"`
	WaterPrice     int    `gorm:"not null"`
	WelcomeCredits int    `gorm:"not null"`
	Currency       string `gorm:"type:varchar(8);not null"`
	PaymentAccount string `gorm:"type:varchar(255)"`
	PaymentQRURL   string `gorm:"type:text"`
	PaymentQRKey   string `gorm:"type:text"`

	Packages CreditPackageList `gorm:"type:jsonb;not null;default:'[]'"`

	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingsModel) TableName() string {
	return "settings"
}

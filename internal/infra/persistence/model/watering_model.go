package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WateringRequestModel is the GORM-specific struct for the 'watering_requests' table.
// The plant columns are a snapshot taken at request time so the work item stays
// meaningful even if the catalog entry changes later. The report columns are
// only populated when the request reaches 'completed'.
type WateringRequestModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PlantID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	RequesterID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	TechnicianID *uuid.UUID `gorm:"type:uuid;index"`
	Urgency      string     `gorm:"type:varchar(16);not null"`
	Status       string     `gorm:"type:varchar(32);not null;index"`
	Notes        string     `gorm:"type:text"`

	PlantName      string  `gorm:"type:varchar(255);not null"`
	PlantLatitude  float64 `gorm:"type:decimal(10,7);not null"`
	PlantLongitude float64 `gorm:"type:decimal(10,7);not null"`
	PlantImageURL  string  `gorm:"type:text"`

	ReportCondition         string  `gorm:"type:varchar(64)"`
	ReportWaterAmountLiters float64 `gorm:"type:decimal(10,2)"`
	ReportDurationMinutes   int
	ReportNotes             string `gorm:"type:text"`
	ReportPhotoURL          string `gorm:"type:text"`

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (WateringRequestModel) TableName() string {
	return "watering_requests"
}

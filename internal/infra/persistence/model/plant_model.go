package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlantModel is the GORM-specific struct for the 'plants' table.
type PlantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Species      string    `gorm:"type:varchar(255);not null;index"`
	CommonName   string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Latitude     float64   `gorm:"type:decimal(10,7);not null"`
	Longitude    float64   `gorm:"type:decimal(10,7);not null"`
	ImageURL     string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(32);not null;index"`
	AdoptionCost *int
	AdopterID    *uuid.UUID `gorm:"type:uuid;index"`
	AdoptedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PlantModel) TableName() string {
	return "plants"
}

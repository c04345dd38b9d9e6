package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PlantStatus represents the lifecycle state of a tree in the catalog.
type PlantStatus string

const (
	// PlantStatusAvailable means the tree can be adopted.
	PlantStatusAvailable PlantStatus = "available"
	// PlantStatusAdopted means a citizen has adopted the tree. There is no
	// transition out of this state.
	PlantStatusAdopted PlantStatus = "adopted"
	// PlantStatusMaintenance means the tree is temporarily withdrawn from the
	// catalog by an administrator.
	PlantStatusMaintenance PlantStatus = "maintenance"
)

// IsValid checks if the PlantStatus is a valid value.
func (s PlantStatus) IsValid() bool {
	switch s {
	case PlantStatusAvailable, PlantStatusAdopted, PlantStatusMaintenance:
		return true
	default:
		return false
	}
}

// Plant is a tree in the municipal catalog.
type Plant struct {
	ID          uuid.UUID
	Species     string
	CommonName  string
	Description string
	Latitude    float64
	Longitude   float64
	ImageURL    string
	Status      PlantStatus

	// AdoptionCost overrides the settings-wide adoption price when set.
	AdoptionCost *int

	// AdopterID and AdoptedAt are set exactly once, by the adoption transition.
	AdopterID *uuid.UUID
	AdoptedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location returns the tree's coordinates as an orb point (lon, lat order).
func (p *Plant) Location() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// CostOrDefault returns the per-plant adoption cost, falling back to the
// program-wide price when none is set on the plant.
func (p *Plant) CostOrDefault(defaultCost int) int {
	if p.AdoptionCost != nil {
		return *p.AdoptionCost
	}

	return defaultCost
}

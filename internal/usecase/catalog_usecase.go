package usecase

import (
	"context"

	"arbolitos/internal/domain/entity"

	"github.com/google/uuid"
)

// PlantInput carries the editable fields of a catalog entry.
type PlantInput struct {
	Species      string
	CommonName   string
	Description  string
	Latitude     float64
	Longitude    float64
	AdoptionCost *int
	Status       entity.PlantStatus // only honored on update; create starts available
	Image        *FileUpload
}

// PlantListFilter narrows and orders catalog listings. When Near is set the
// results are ordered by distance from that point.
type PlantListFilter struct {
	Status  entity.PlantStatus
	Species string
	Near    *LatLon
}

// LatLon is a coordinate pair in degrees.
type LatLon struct {
	Latitude  float64
	Longitude float64
}

// AdoptionResult reports an adoption along with the adopter's new balance.
type AdoptionResult struct {
	Plant   *entity.Plant
	Balance int
}

// CatalogUsecase defines the interface for tree catalog and adoption use cases.
type CatalogUsecase interface {
	// CreatePlant adds a tree to the catalog. Admin only.
	CreatePlant(ctx context.Context, input PlantInput) (*entity.Plant, error)

	// UpdatePlant edits a catalog entry. Admin only.
	UpdatePlant(ctx context.Context, id uuid.UUID, input PlantInput) (*entity.Plant, error)

	// DeletePlant removes a catalog entry. Admin only.
	DeletePlant(ctx context.Context, id uuid.UUID) error

	// GetPlant retrieves one tree.
	GetPlant(ctx context.Context, id uuid.UUID) (*entity.Plant, error)

	// ListPlants retrieves catalog entries matching the filter.
	ListPlants(ctx context.Context, filter PlantListFilter) ([]*entity.Plant, error)

	// AdoptPlant debits the adoption cost and flips the tree to adopted, as
	// one atomic operation.
	AdoptPlant(ctx context.Context, plantID, userID uuid.UUID) (*AdoptionResult, error)
}

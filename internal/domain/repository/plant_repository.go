package repository

import (
	"context"
	"time"

	"arbolitos/internal/domain/entity"
	"arbolitos/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrPlantNotFound = errors.New("plant not found")

	// ErrPlantNotAvailable is returned by MarkAdopted when the plant exists
	// but its status is not "available".
	ErrPlantNotAvailable = errors.New("plant not available")
)

// PlantFilter narrows catalog listings.
type PlantFilter struct {
	Status  entity.PlantStatus
	Species string
}

// PlantRepository manages the tree catalog.
type PlantRepository interface {
	Create(ctx context.Context, plant *entity.Plant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error)
	List(ctx context.Context, filter PlantFilter) ([]*entity.Plant, error)
	Update(ctx context.Context, plant *entity.Plant) error
	Delete(ctx context.Context, id uuid.UUID) error

	// MarkAdopted performs the guarded adoption write: status flips from
	// "available" to "adopted" and the adopter is recorded, in one statement.
	// Returns ErrPlantNotAvailable when the plant is in any other state, so
	// two racing adopters cannot both succeed.
	MarkAdopted(ctx context.Context, id, adopterID uuid.UUID, at time.Time) error
}

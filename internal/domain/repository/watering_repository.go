package repository

import (
	"context"
	"time"

	"arbolitos/internal/domain/entity"
	"arbolitos/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrWateringNotFound = errors.New("watering request not found")

	// ErrWateringStateConflict is returned by the guarded transitions when
	// the request is not in the state the transition expects.
	ErrWateringStateConflict = errors.New("watering request state conflict")
)

// WateringRepository manages watering work items.
type WateringRepository interface {
	Create(ctx context.Context, request *entity.WateringRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WateringRequest, error)

	// ListPending returns the shared pool of requests still in "assigned".
	ListPending(ctx context.Context) ([]*entity.WateringRequest, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.WateringRequest, error)
	ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*entity.WateringRequest, error)

	// Claim moves "assigned" -> "in-progress" and records the technician,
	// guarded so only one technician wins the claim.
	Claim(ctx context.Context, id, technicianID uuid.UUID) error

	// Complete moves "in-progress" -> "completed" with the report attached,
	// guarded on the current state and the claiming technician.
	Complete(ctx context.Context, id, technicianID uuid.UUID, report *entity.WateringReport, at time.Time) error
}

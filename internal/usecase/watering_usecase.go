package usecase

import (
	"context"

	"arbolitos/internal/domain/entity"

	"github.com/google/uuid"
)

// WateringRequestInput carries the fields of a new watering request.
type WateringRequestInput struct {
	PlantID     uuid.UUID
	RequesterID uuid.UUID
	Urgency     entity.Urgency
	Notes       string
}

// WateringResult reports a new request along with the requester's new balance.
type WateringResult struct {
	Request *entity.WateringRequest
	Balance int
}

// WateringReportInput carries a technician's completion report. The photo is
// mandatory.
type WateringReportInput struct {
	RequestID    uuid.UUID
	TechnicianID uuid.UUID

	Condition         string
	WaterAmountLiters float64
	DurationMinutes   int
	Notes             string
	Photo             *FileUpload
}

// WateringUsecase defines the interface for watering workflow use cases.
type WateringUsecase interface {
	// RequestWatering debits the watering price and queues a work item for
	// the technician pool, as one atomic operation.
	RequestWatering(ctx context.Context, input WateringRequestInput) (*WateringResult, error)

	// UpdateStatus advances the request along assigned -> in-progress.
	// The completed transition only happens through SubmitReport.
	UpdateStatus(ctx context.Context, requestID, technicianID uuid.UUID, next entity.WateringStatus) (*entity.WateringRequest, error)

	// SubmitReport completes the request with the technician's report.
	SubmitReport(ctx context.Context, input WateringReportInput) (*entity.WateringRequest, error)

	// GetRequest retrieves one request.
	GetRequest(ctx context.Context, id uuid.UUID) (*entity.WateringRequest, error)

	// ListPending retrieves the unclaimed pool, for technicians.
	ListPending(ctx context.Context) ([]*entity.WateringRequest, error)

	// ListByRequester retrieves a citizen's own requests.
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.WateringRequest, error)

	// ListByTechnician retrieves a technician's claimed requests.
	ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*entity.WateringRequest, error)
}

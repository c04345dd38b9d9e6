package entity

import (
	"time"

	"github.com/google/uuid"
)

// WateringStatus represents the state of a watering work item.
// Requests are auto-assigned to the shared technician pool at creation, so the
// initial state is already "assigned".
type WateringStatus string

const (
	// WateringStatusAssigned is the initial state: queued for any technician.
	WateringStatusAssigned WateringStatus = "assigned"
	// WateringStatusInProgress means a technician has claimed the request.
	WateringStatusInProgress WateringStatus = "in-progress"
	// WateringStatusCompleted is terminal; set by the completion report.
	WateringStatusCompleted WateringStatus = "completed"
)

// IsValid checks if the WateringStatus is a valid value.
func (s WateringStatus) IsValid() bool {
	switch s {
	case WateringStatusAssigned, WateringStatusInProgress, WateringStatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the single-step move to next is allowed.
func (s WateringStatus) CanTransitionTo(next WateringStatus) bool {
	switch s {
	case WateringStatusAssigned:
		return next == WateringStatusInProgress
	case WateringStatusInProgress:
		return next == WateringStatusCompleted
	default:
		return false
	}
}

// Urgency grades how soon a watering visit is needed.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// IsValid checks if the Urgency is a valid value.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	default:
		return false
	}
}

// WateringRequest is a technician work item created by a citizen spending
// credits. The tree's name, coordinates and image are denormalized at creation
// time so the work item stays meaningful even if the catalog entry changes.
type WateringRequest struct {
	ID          uuid.UUID
	PlantID     uuid.UUID
	RequesterID uuid.UUID

	// TechnicianID is recorded when a technician claims the request.
	TechnicianID *uuid.UUID

	Urgency Urgency
	Status  WateringStatus
	Notes   string

	// Snapshot of the plant at request time.
	PlantName      string
	PlantLatitude  float64
	PlantLongitude float64
	PlantImageURL  string

	// Completion report, filled by the terminal transition.
	Report      *WateringReport
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WateringReport holds the fields a technician files when completing a visit.
// The photo is mandatory evidence.
type WateringReport struct {
	Condition         string
	WaterAmountLiters float64
	DurationMinutes   int
	Notes             string
	PhotoURL          string
}

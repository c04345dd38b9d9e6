package postgres

import (
	"context"
	"time"

	"arbolitos/internal/domain/entity"
	domainerrors "arbolitos/internal/domain/errors"
	"arbolitos/internal/domain/repository"
	"arbolitos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// wateringRepository implements the repository.WateringRepository interface.
type wateringRepository struct {
	db *gorm.DB
}

// NewWateringRepository is the constructor for wateringRepository.
func NewWateringRepository(db *gorm.DB) repository.WateringRepository {
	return &wateringRepository{
		db: db,
	}
}

// Create persists a new watering request with its plant snapshot.
func (repo *wateringRepository) Create(ctx context.Context, request *entity.WateringRequest) error {
	requestM := fromWateringDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPlantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create watering request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindByID retrieves a watering request by its unique ID.
func (repo *wateringRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WateringRequest, error) {
	var requestM model.WateringRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWateringNotFound
		}

		return nil, errors.Wrap(err, "failed to find watering request by ID")
	}

	return toWateringDomain(&requestM), nil
}

// ListPending retrieves the shared pool of unclaimed requests, oldest first so
// the queue drains in order.
func (repo *wateringRepository) ListPending(ctx context.Context) ([]*entity.WateringRequest, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).
		Where("status = ?", string(entity.WateringStatusAssigned)).
		Order("created_at ASC"))
}

// ListByRequester retrieves all requests created by one user.
func (repo *wateringRepository) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.WateringRequest, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC"))
}

// ListByTechnician retrieves all requests claimed by one technician.
func (repo *wateringRepository) ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*entity.WateringRequest, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).
		Where("technician_id = ?", technicianID).
		Order("created_at DESC"))
}

func (repo *wateringRepository) list(_ context.Context, query *gorm.DB) ([]*entity.WateringRequest, error) {
	var requestModels []*model.WateringRequestModel

	if err := query.Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list watering requests")
	}

	requests := make([]*entity.WateringRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toWateringDomain(requestM))
	}

	return requests, nil
}

// Claim assigns the request to a technician, guarded on the 'assigned' state
// so only the first claimer wins.
func (repo *wateringRepository) Claim(ctx context.Context, id, technicianID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WateringRequestModel{}).
		Where("id = ? AND status = ?", id, string(entity.WateringStatusAssigned)).
		Updates(map[string]any{
			"status":        string(entity.WateringStatusInProgress),
			"technician_id": technicianID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to claim watering request")
	}

	if result.RowsAffected == 0 {
		return repo.stateConflictOrNotFound(ctx, id)
	}

	return nil
}

// Complete attaches the report and closes the request, guarded on the
// 'in-progress' state and on the claiming technician.
func (repo *wateringRepository) Complete(ctx context.Context, id, technicianID uuid.UUID, report *entity.WateringReport, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WateringRequestModel{}).
		Where("id = ? AND status = ? AND technician_id = ?", id, string(entity.WateringStatusInProgress), technicianID).
		Updates(map[string]any{
			"status":                     string(entity.WateringStatusCompleted),
			"report_condition":           report.Condition,
			"report_water_amount_liters": report.WaterAmountLiters,
			"report_duration_minutes":    report.DurationMinutes,
			"report_notes":               report.Notes,
			"report_photo_url":           report.PhotoURL,
			"completed_at":               at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to complete watering request")
	}

	if result.RowsAffected == 0 {
		return repo.stateConflictOrNotFound(ctx, id)
	}

	return nil
}

func (repo *wateringRepository) stateConflictOrNotFound(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.WateringRequestModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check watering request existence")
	}

	if count == 0 {
		return repository.ErrWateringNotFound
	}

	return repository.ErrWateringStateConflict
}

// --- Mapper Functions ---

// toWateringDomain converts a GORM WateringRequestModel to a domain entity.
func toWateringDomain(data *model.WateringRequestModel) *entity.WateringRequest {
	if data == nil {
		return nil
	}

	request := &entity.WateringRequest{
		ID:             data.ID,
		PlantID:        data.PlantID,
		RequesterID:    data.RequesterID,
		TechnicianID:   data.TechnicianID,
		Urgency:        entity.Urgency(data.Urgency),
		Status:         entity.WateringStatus(data.Status),
		Notes:          data.Notes,
		PlantName:      data.PlantName,
		PlantLatitude:  data.PlantLatitude,
		PlantLongitude: data.PlantLongitude,
		PlantImageURL:  data.PlantImageURL,
		CompletedAt:    data.CompletedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.Status == string(entity.WateringStatusCompleted) {
		request.Report = &entity.WateringReport{
			Condition:         data.ReportCondition,
			WaterAmountLiters: data.ReportWaterAmountLiters,
			DurationMinutes:   data.ReportDurationMinutes,
			Notes:             data.ReportNotes,
			PhotoURL:          data.ReportPhotoURL,
		}
	}

	return request
}

// fromWateringDomain converts a domain entity to a GORM WateringRequestModel.
func fromWateringDomain(data *entity.WateringRequest) *model.WateringRequestModel {
	if data == nil {
		return nil
	}

	requestM := &model.WateringRequestModel{
		ID:             data.ID,
		PlantID:        data.PlantID,
		RequesterID:    data.RequesterID,
		TechnicianID:   data.TechnicianID,
		Urgency:        string(data.Urgency),
		Status:         string(data.Status),
		Notes:          data.Notes,
		PlantName:      data.PlantName,
		PlantLatitude:  data.PlantLatitude,
		PlantLongitude: data.PlantLongitude,
		PlantImageURL:  data.PlantImageURL,
		CompletedAt:    data.CompletedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.Report != nil {
		requestM.ReportCondition = data.Report.Condition
		requestM.ReportWaterAmountLiters = data.Report.WaterAmountLiters
		requestM.ReportDurationMinutes = data.Report.DurationMinutes
		requestM.ReportNotes = data.Report.Notes
		requestM.ReportPhotoURL = data.Report.PhotoURL
	}

	return requestM
}

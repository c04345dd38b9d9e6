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

// plantRepository implements the repository.PlantRepository interface.
type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository is the constructor for plantRepository.
func NewPlantRepository(db *gorm.DB) repository.PlantRepository {
	return &plantRepository{
		db: db,
	}
}

// Create persists a new catalog entry.
func (repo *plantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)

	if err := repo.db.WithContext(ctx).Create(plantM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("datos del árbol inválidos")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plant")
	}

	plant.ID = plantM.ID
	plant.CreatedAt = plantM.CreatedAt
	plant.UpdatedAt = plantM.UpdatedAt

	return nil
}

// FindByID retrieves a plant by its unique ID.
func (repo *plantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	var plantM model.PlantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&plantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to find plant by ID")
	}

	return toPlantDomain(&plantM), nil
}

// List retrieves catalog entries matching the filter.
func (repo *plantRepository) List(ctx context.Context, filter repository.PlantFilter) ([]*entity.Plant, error) {
	query := repo.db.WithContext(ctx)

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Species != "" {
		query = query.Where("species = ?", filter.Species)
	}

	var plantModels []*model.PlantModel
	if err := query.
		Order("created_at DESC").
		Find(&plantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plants")
	}

	plants := make([]*entity.Plant, 0, len(plantModels))
	for _, plantM := range plantModels {
		plants = append(plants, toPlantDomain(plantM))
	}

	return plants, nil
}

// Update persists catalog edits. Adoption fields are excluded; they only
// change through MarkAdopted.
func (repo *plantRepository) Update(ctx context.Context, plant *entity.Plant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ?", plant.ID).
		Updates(map[string]any{
			"common_name":   plant.CommonName,
			"species":       plant.Species,
			"description":   plant.Description,
			"latitude":      plant.Latitude,
			"longitude":     plant.Longitude,
			"image_url":     plant.ImageURL,
			"status":        string(plant.Status),
			"adoption_cost": plant.AdoptionCost,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update plant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

// Delete removes a plant by its ID (soft delete).
func (repo *plantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlantModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete plant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlantNotFound
	}

	return nil
}

// MarkAdopted flips an available plant to adopted in one guarded statement.
// The status predicate in the WHERE clause is what serializes racing adopters;
// the loser sees zero affected rows.
func (repo *plantRepository) MarkAdopted(ctx context.Context, id, adopterID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("id = ? AND status = ?", id, string(entity.PlantStatusAvailable)).
		Updates(map[string]any{
			"status":     string(entity.PlantStatusAdopted),
			"adopter_id": adopterID,
			"adopted_at": at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark plant adopted")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing plant from one already adopted.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.PlantModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check plant existence")
		}

		if count == 0 {
			return repository.ErrPlantNotFound
		}

		return repository.ErrPlantNotAvailable
	}

	return nil
}

// --- Mapper Functions ---

// toPlantDomain converts a GORM PlantModel to a domain Plant entity.
func toPlantDomain(data *model.PlantModel) *entity.Plant {
	if data == nil {
		return nil
	}

	return &entity.Plant{
		ID:           data.ID,
		Species:      data.Species,
		CommonName:   data.CommonName,
		Description:  data.Description,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		ImageURL:     data.ImageURL,
		Status:       entity.PlantStatus(data.Status),
		AdoptionCost: data.AdoptionCost,
		AdopterID:    data.AdopterID,
		AdoptedAt:    data.AdoptedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromPlantDomain converts a domain Plant entity to a GORM PlantModel.
func fromPlantDomain(data *entity.Plant) *model.PlantModel {
	if data == nil {
		return nil
	}

	return &model.PlantModel{
		ID:           data.ID,
		Species:      data.Species,
		CommonName:   data.CommonName,
		Description:  data.Description,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		ImageURL:     data.ImageURL,
		Status:       string(data.Status),
		AdoptionCost: data.AdoptionCost,
		AdopterID:    data.AdopterID,
		AdoptedAt:    data.AdoptedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

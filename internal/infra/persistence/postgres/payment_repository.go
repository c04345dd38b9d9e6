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

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create persists a new payment claim with its package snapshot.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindByID retrieves a payment by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by ID")
	}

	return toPaymentDomain(&paymentM), nil
}

// List retrieves payments matching the filter, newest first.
func (repo *paymentRepository) List(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	query := repo.db.WithContext(ctx)

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var paymentModels []*model.PaymentModel
	if err := query.
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// ListByUser retrieves one user's payment history, newest first.
func (repo *paymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payments by user")
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments, nil
}

// Decide moves a pending payment to its terminal status. The status predicate
// makes the decision single-shot: a second admin deciding the same payment
// matches zero rows.
func (repo *paymentRepository) Decide(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, decidedBy uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ? AND status = ?", id, string(entity.PaymentStatusPending)).
		Updates(map[string]any{
			"status":     string(status),
			"decided_by": decidedBy,
			"decided_at": at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decide payment")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.PaymentModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check payment existence")
		}

		if count == 0 {
			return repository.ErrPaymentNotFound
		}

		return repository.ErrPaymentAlreadyDecided
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:     data.ID,
		UserID: data.UserID,
		Package: entity.PackageSnapshot{
			PackageID: data.PackageID,
			Name:      data.PackageName,
			Credits:   data.PackageCredits,
			Bonus:     data.PackageBonus,
			Price:     data.PackagePrice,
		},
		ProofURL:  data.ProofURL,
		Status:    entity.PaymentStatus(data.Status),
		DecidedBy: data.DecidedBy,
		DecidedAt: data.DecidedAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:             data.ID,
		UserID:         data.UserID,
		PackageID:      data.Package.PackageID,
		PackageName:    data.Package.Name,
		PackageCredits: data.Package.Credits,
		PackageBonus:   data.Package.Bonus,
		PackagePrice:   data.Package.Price,
		ProofURL:       data.ProofURL,
		Status:         string(data.Status),
		DecidedBy:      data.DecidedBy,
		DecidedAt:      data.DecidedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

package postgres

import (
	"context"

	"arbolitos/internal/domain/entity"
	domainerrors "arbolitos/internal/domain/errors"
	"arbolitos/internal/domain/repository"
	"arbolitos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a user by its unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// List retrieves all users ordered by creation time.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Update persists profile changes. Credits are deliberately excluded; balance
// changes only go through DebitCredits and CreditCredits.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":      user.Name,
			"email":     user.Email,
			"role":      string(user.Role),
			"fcm_token": user.FCMToken,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists
		}

		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by its ID (soft delete).
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// DebitCredits subtracts amount from the balance with the sufficiency check
// pushed into the UPDATE itself, so two concurrent debits can never overdraw
// the account. On ErrInsufficientCredits the returned balance is the current
// one, for error reporting.
func (repo *userRepository) DebitCredits(ctx context.Context, id uuid.UUID, amount int) (int, error) {
	if amount < 0 {
		return 0, errors.Errorf("debit amount must be non-negative, got %d", amount)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND credits >= ?", id, amount).
		Update("credits", gorm.Expr("credits - ?", amount))

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to debit credits")
	}

	if result.RowsAffected == 0 {
		// Either the user does not exist or the balance is short. A follow-up
		// read on the primary distinguishes the two.
		balance, err := repo.readBalance(ctx, id)
		if err != nil {
			return 0, err
		}

		return balance, repository.ErrInsufficientCredits
	}

	return repo.readBalance(ctx, id)
}

// CreditCredits adds amount to the balance and returns the new balance.
func (repo *userRepository) CreditCredits(ctx context.Context, id uuid.UUID, amount int) (int, error) {
	if amount < 0 {
		return 0, errors.Errorf("credit amount must be non-negative, got %d", amount)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("credits", gorm.Expr("credits + ?", amount))

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to credit credits")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrUserNotFound
	}

	return repo.readBalance(ctx, id)
}

// readBalance reads the balance pinned to the write connection, so a read
// inside a transaction or right after a guarded update never hits a stale
// replica.
func (repo *userRepository) readBalance(ctx context.Context, id uuid.UUID) (int, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Select("credits").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, repository.ErrUserNotFound
		}

		return 0, errors.Wrap(err, "failed to read balance")
	}

	return userM.Credits, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Credits:      data.Credits,
		FCMToken:     data.FCMToken,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         string(data.Role),
		Credits:      data.Credits,
		FCMToken:     data.FCMToken,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

package postgres

import (
	"context"
	"time"

	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	"rolodex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	userM := &model.UserModel{
		ID:           uuid.New(),
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	updates := map[string]any{
		"email":         user.Email,
		"name":          user.Name,
		"password_hash": user.PasswordHash,
		"updated_at":    time.Now().UTC(),
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

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
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

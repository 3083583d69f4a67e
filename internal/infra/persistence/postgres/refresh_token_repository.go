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

// refreshTokenRepository implements the domain.RefreshTokenRepository interface using GORM.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create stores a new session token hash.
func (repo *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := &model.RefreshTokenModel{
		ID:        uuid.New(),
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store refresh token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByTokenHash retrieves a session by its token hash.
func (repo *refreshTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	return &entity.RefreshToken{
		ID:        tokenM.ID,
		UserID:    tokenM.UserID,
		TokenHash: tokenM.TokenHash,
		ExpiresAt: tokenM.ExpiresAt,
		CreatedAt: tokenM.CreatedAt,
	}, nil
}

// DeleteByID removes a single session.
func (repo *refreshTokenRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RefreshTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete refresh token")
	}

	return nil
}

// DeleteByTokenHash removes the session matching the hash, if any.
func (repo *refreshTokenRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.RefreshTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete refresh token")
	}

	return nil
}

// CountByUser returns the number of active sessions for a user.
func (repo *refreshTokenRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count refresh tokens")
	}

	return count, nil
}

// DeleteOldestByUser trims the user's sessions to the newest keep entries.
func (repo *refreshTokenRepository) DeleteOldestByUser(ctx context.Context, userID uuid.UUID, keep int) error {
	subQuery := repo.db.
		Model(&model.RefreshTokenModel{}).
		Select("id").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(keep)

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id NOT IN (?)", userID, subQuery).
		Delete(&model.RefreshTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to trim refresh tokens")
	}

	return nil
}

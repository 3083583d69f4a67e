package repository

import (
	"context"

	"rolodex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRefreshTokenRepository is a testify mock of repository.RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)

	return args.Error(0)
}

func (m *MockRefreshTokenRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteOldestByUser(ctx context.Context, userID uuid.UUID, keep int) error {
	args := m.Called(ctx, userID, keep)

	return args.Error(0)
}

package repository

import (
	"context"

	"rolodex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockGroupRepository is a testify mock of repository.GroupRepository.
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *entity.Group) error {
	args := m.Called(ctx, group)

	return args.Error(0)
}

func (m *MockGroupRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Group, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Group), args.Error(1)
}

func (m *MockGroupRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Group, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Group), args.Error(1)
}

func (m *MockGroupRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)

	return args.Error(0)
}

func (m *MockGroupRepository) AddMember(ctx context.Context, groupID, contactID uuid.UUID) error {
	args := m.Called(ctx, groupID, contactID)

	return args.Error(0)
}

func (m *MockGroupRepository) RemoveMember(ctx context.Context, groupID, contactID uuid.UUID) error {
	args := m.Called(ctx, groupID, contactID)

	return args.Error(0)
}

func (m *MockGroupRepository) MemberContactIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]uuid.UUID), args.Error(1)
}

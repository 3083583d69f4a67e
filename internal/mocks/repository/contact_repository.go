// Package repository contains hand-written test doubles for the domain
// repository interfaces.
package repository

import (
	"context"

	"rolodex/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockContactRepository is a testify mock of repository.ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, ownerID uuid.UUID, p *entity.ContactPatch) (*entity.Contact, error) {
	args := m.Called(ctx, ownerID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Contact, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context, ownerID uuid.UUID, filter entity.ContactFilter) ([]*entity.Contact, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Contact), args.Error(1)
}

func (m *MockContactRepository) Update(ctx context.Context, id, ownerID uuid.UUID, p *entity.ContactPatch) (*entity.Contact, error) {
	args := m.Called(ctx, id, ownerID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)

	return args.Error(0)
}

func (m *MockContactRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactRepository) ExistsByOwnerAndEmail(ctx context.Context, ownerID uuid.UUID, email string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID, email, excludeID)

	return args.Bool(0), args.Error(1)
}

// Package usecase provides testify doubles for the usecase interfaces.
package usecase

import (
	"context"

	"rolodex/internal/domain/entity"
	"rolodex/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockContactUsecase is a mock implementation of usecase.ContactUsecase.
type MockContactUsecase struct {
	mock.Mock
}

func (m *MockContactUsecase) List(ctx context.Context, ownerID uuid.UUID, input *usecase.ListContactsInput) ([]*entity.Contact, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Contact), args.Error(1)
}

func (m *MockContactUsecase) GetByID(ctx context.Context, ownerID, contactID uuid.UUID) (*entity.Contact, error) {
	args := m.Called(ctx, ownerID, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactUsecase) Save(ctx context.Context, ownerID uuid.UUID, input *usecase.SaveContactInput) (*entity.Contact, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactUsecase) Delete(ctx context.Context, ownerID, contactID uuid.UUID) error {
	args := m.Called(ctx, ownerID, contactID)

	return args.Error(0)
}

func (m *MockContactUsecase) UpdateNotes(ctx context.Context, ownerID, contactID uuid.UUID, input *usecase.UpdateNotesInput) (*entity.Contact, error) {
	args := m.Called(ctx, ownerID, contactID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactUsecase) Count(ctx context.Context, ownerID uuid.UUID) (*usecase.ContactCountOutput, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.ContactCountOutput), args.Error(1)
}

func (m *MockContactUsecase) GenerateQRCode(ctx context.Context, ownerID, contactID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, ownerID, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// MockGroupUsecase is a mock implementation of usecase.GroupUsecase.
type MockGroupUsecase struct {
	mock.Mock
}

func (m *MockGroupUsecase) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateGroupInput) (*entity.Group, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Group), args.Error(1)
}

func (m *MockGroupUsecase) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Group, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Group), args.Error(1)
}

func (m *MockGroupUsecase) Delete(ctx context.Context, ownerID, groupID uuid.UUID) error {
	args := m.Called(ctx, ownerID, groupID)

	return args.Error(0)
}

func (m *MockGroupUsecase) AddContact(ctx context.Context, ownerID, groupID, contactID uuid.UUID) error {
	args := m.Called(ctx, ownerID, groupID, contactID)

	return args.Error(0)
}

func (m *MockGroupUsecase) RemoveContact(ctx context.Context, ownerID, groupID, contactID uuid.UUID) error {
	args := m.Called(ctx, ownerID, groupID, contactID)

	return args.Error(0)
}

// MockUserUsecase is a mock implementation of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *MockUserUsecase) LoginWithGoogle(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *MockUserUsecase) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *MockUserUsecase) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

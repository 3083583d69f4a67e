package repository

import (
	"context"

	"rolodex/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a testify mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) ContactRepo() repository.ContactRepository {
	args := m.Called()

	return args.Get(0).(repository.ContactRepository)
}

func (m *MockRepositoryFactory) GroupRepo() repository.GroupRepository {
	args := m.Called()

	return args.Get(0).(repository.GroupRepository)
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()

	return args.Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	args := m.Called()

	return args.Get(0).(repository.RefreshTokenRepository)
}

// MockTransactionManager is a testify mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// PassthroughTransactionManager runs the callback directly against a fixed
// factory, so tests exercise the real transactional flow without a database.
type PassthroughTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *PassthroughTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

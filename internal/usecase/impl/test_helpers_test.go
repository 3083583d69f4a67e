package impl

import (
	"io"
	"log/slog"

	"rolodex/config"
	mockRepo "rolodex/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
	}
}

// newPassthroughFactory wires a factory whose transactional repositories are
// the same mocks the test configures directly.
func newPassthroughFactory(contactRepo *mockRepo.MockContactRepository, groupRepo *mockRepo.MockGroupRepository, userRepo *mockRepo.MockUserRepository, tokenRepo *mockRepo.MockRefreshTokenRepository) *mockRepo.MockRepositoryFactory {
	factory := &mockRepo.MockRepositoryFactory{}
	if contactRepo != nil {
		factory.On("ContactRepo").Return(contactRepo).Maybe()
	}
	if groupRepo != nil {
		factory.On("GroupRepo").Return(groupRepo).Maybe()
	}
	if userRepo != nil {
		factory.On("UserRepo").Return(userRepo).Maybe()
	}
	if tokenRepo != nil {
		factory.On("RefreshTokenRepo").Return(tokenRepo).Maybe()
	}

	return factory
}

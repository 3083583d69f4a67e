// Package service contains hand-written test doubles for the domain service
// interfaces.
package service

import (
	"context"
	"time"

	"rolodex/internal/domain/entity"
	"rolodex/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID) (string, string, error) {
	args := m.Called(userID)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// MockOAuthVerifier is a testify mock of service.OAuthVerifier.
type MockOAuthVerifier struct {
	mock.Mock
}

func (m *MockOAuthVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.OAuthUser), args.Error(1)
}

// MockEventPublisher is a testify mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishContactEvent(ctx context.Context, event *service.ContactEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

// MockQRCodeService is a testify mock of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func (m *MockQRCodeService) GenerateContactCard(contact *entity.Contact) ([]byte, error) {
	args := m.Called(contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// MockRateLimitStore is a testify mock of service.RateLimitStore.
type MockRateLimitStore struct {
	mock.Mock
}

func (m *MockRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	args := m.Called(ctx, key, window)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRateLimitStore) Reset(ctx context.Context, key string) error {
	args := m.Called(ctx, key)

	return args.Error(0)
}

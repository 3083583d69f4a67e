package impl

import (
	"context"
	"testing"
	"time"

	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	"rolodex/internal/domain/service"
	mockRepo "rolodex/internal/mocks/repository"
	mockSvc "rolodex/internal/mocks/service"
	"rolodex/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service       usecase.UserUsecase
	userRepo      *mockRepo.MockUserRepository
	tokenRepo     *mockRepo.MockRefreshTokenRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
	oauthVerifier *mockSvc.MockOAuthVerifier
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	tokenRepo := &mockRepo.MockRefreshTokenRepository{}
	hasher := &mockSvc.MockPasswordHasher{}
	tokenService := &mockSvc.MockTokenService{}
	oauthVerifier := &mockSvc.MockOAuthVerifier{}

	factory := newPassthroughFactory(nil, nil, userRepo, tokenRepo)

	svc := NewUserService(UserServiceParams{
		TxManager:        &mockRepo.PassthroughTransactionManager{Factory: factory},
		UserRepo:         userRepo,
		RefreshTokenRepo: tokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		OAuthVerifier:    oauthVerifier,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:       svc,
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		oauthVerifier: oauthVerifier,
	}
}

func expectTokenIssue(fixtures userServiceFixtures, userID uuid.UUID) {
	fixtures.tokenService.On("GenerateTokens", userID).Return("access-token", "refresh-token", nil)
	fixtures.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	fixtures.tokenRepo.On("Create", mock.Anything, mock.MatchedBy(func(tok *entity.RefreshToken) bool {
		// The raw token must never reach storage.
		return tok.UserID == userID && tok.TokenHash != "refresh-token" && tok.TokenHash != ""
	})).Return(nil)
}

func TestUserService_Register_Success(t *testing.T) {
	fixtures := createTestUserService(t, 0)
	ctx := context.Background()

	fixtures.hasher.On("Hash", "Password123!").Return("hashed_password", nil)
	fixtures.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "test@example.com" && u.PasswordHash == "hashed_password"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = uuid.New()
	}).Return(nil)

	output, err := fixtures.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "  Test@Example.COM ",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fixtures := createTestUserService(t, 0)
	ctx := context.Background()

	fixtures.hasher.On("Hash", mock.Anything).Return("hashed", nil)
	fixtures.userRepo.On("Create", ctx, mock.Anything).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := fixtures.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fixtures := createTestUserService(t, 0)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com", PasswordHash: "hashed"}

	fixtures.userRepo.On("FindByEmail", ctx, "test@example.com").Return(user, nil)
	fixtures.hasher.On("Check", "Password123!", "hashed").Return(true)
	expectTokenIssue(fixtures, userID)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	fixtures.tokenRepo.AssertExpectations(t)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestUserService(t, 0)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: "hashed"}

	fixtures.userRepo.On("FindByEmail", ctx, "test@example.com").Return(user, nil)
	fixtures.hasher.On("Check", "wrong", "hashed").Return(false)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmailSameError(t *testing.T) {
	fixtures := createTestUserService(t, 0)
	ctx := context.Background()

	fixtures.userRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	// Unknown email and wrong password are indistinguishable.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_SessionCapTrimsOldest(t *testing.T) {
	fixtures := createTestUserService(t, 3)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com", PasswordHash: "hashed"}

	fixtures.userRepo.On("FindByEmail", ctx, "test@example.com").Return(user, nil)
	fixtures.hasher.On("Check", mock.Anything, mock.Anything).Return(true)
	expectTokenIssue(fixtures, userID)
	fixtures.tokenRepo.On("CountByUser", ctx, userID).Return(int64(4), nil)
	fixtures.tokenRepo.On("DeleteOldestByUser", ctx, userID, 3).Return(nil)

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	fixtures.tokenRepo.AssertCalled(t, "DeleteOldestByUser", ctx, userID, 3)
}

func TestUserService_LoginWithGoogle_ProvisionsUser(t *testing.T) {
	fixtures := createTestUserService(t, 0)
	ctx := context.Background()

	fixtures.oauthVerifier.On("VerifyIDToken", ctx, "google-token").Return(&service.OAuthUser{
		ID:            "google-sub",
		Email:         "New@Example.com",
		Name:          "New User",
		EmailVerified: true,
	}, nil)
	fixtures.userRepo.On("FindByEmail", ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)
	fixtures.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "new@example.com" && u.PasswordHash == ""
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = uuid.New()
	}).Return(nil)
	fixtures.tokenService.On("GenerateTokens", mock.Anything).Return("access-token", "refresh-token", nil)
	fixtures.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	fixtures.tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	output, err := fixtures.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{IDToken: "google-token"})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", output.User.Email)
}

func TestUserService_LoginWithGoogle_InvalidToken(t *testing.T) {
	fixtures := createTestUserService(t, 0)
	ctx := context.Background()

	fixtures.oauthVerifier.On("VerifyIDToken", ctx, "bad-token").
		Return(nil, errors.New("signature mismatch"))

	output, err := fixtures.service.LoginWithGoogle(ctx, &usecase.GoogleLoginInput{IDToken: "bad-token"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestUserService_Refresh_RotatesToken(t *testing.T) {
	fixtures := createTestUserService(t, 0)
	ctx := context.Background()
	userID := uuid.New()
	storedID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}

	fixtures.tokenService.On("ValidateRefreshToken", "old-refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fixtures.tokenRepo.On("FindByTokenHash", ctx, mock.Anything).Return(&entity.RefreshToken{
		ID:        storedID,
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	fixtures.tokenRepo.On("DeleteByID", ctx, storedID).Return(nil)
	fixtures.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	expectTokenIssue(fixtures, userID)

	output, err := fixtures.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	fixtures.tokenRepo.AssertCalled(t, "DeleteByID", ctx, storedID)
}

func TestUserService_Refresh_ExpiredSession(t *testing.T) {
	fixtures := createTestUserService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	fixtures.tokenService.On("ValidateRefreshToken", "old-refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fixtures.tokenRepo.On("FindByTokenHash", ctx, mock.Anything).Return(&entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)

	output, err := fixtures.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "old-refresh"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Refresh_UnknownToken(t *testing.T) {
	fixtures := createTestUserService(t, 0)
	ctx := context.Background()

	fixtures.tokenService.On("ValidateRefreshToken", "revoked").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	fixtures.tokenRepo.On("FindByTokenHash", ctx, mock.Anything).
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fixtures.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "revoked"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_Idempotent(t *testing.T) {
	fixtures := createTestUserService(t, 0)
	ctx := context.Background()

	fixtures.tokenRepo.On("DeleteByTokenHash", ctx, mock.Anything).Return(nil)

	require.NoError(t, fixtures.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "anything"}))
}

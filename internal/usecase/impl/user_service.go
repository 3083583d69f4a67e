package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"rolodex/config"
	deliverycontext "rolodex/internal/delivery/context"
	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	"rolodex/internal/domain/repository"
	"rolodex/internal/domain/service"
	"rolodex/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	oauthVerifier     service.OAuthVerifier
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	OAuthVerifier    service.OAuthVerifier
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		oauthVerifier:     params.OAuthVerifier,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a hashed password.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, mapUserError(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies credentials and opens a new session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.openSession(ctx, user)
}

// LoginWithGoogle verifies a Google-issued ID token, provisioning an account
// on first sign-in.
func (srv *userService) LoginWithGoogle(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.LoginOutput, error) {
	oauthUser, err := srv.oauthVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid google id token")
	}

	email := strings.ToLower(oauthUser.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		// Provisioned accounts carry no password hash; password login stays
		// closed for them.
		user = &entity.User{
			Name:  oauthUser.Name,
			Email: email,
		}
		if err := srv.userRepo.Create(ctx, user); err != nil {
			return nil, mapUserError(err, "failed to provision google user")
		}

		srv.log(ctx).Info("Provisioned user from google sign-in", slog.String("user_id", user.ID.String()))
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to load user for google login")
	}

	return srv.openSession(ctx, user)
}

// Refresh rotates the session: the presented refresh token is revoked and a
// fresh pair is issued.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	var user *entity.User
	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		tokenRepo := repoFactory.RefreshTokenRepo()

		stored, err := tokenRepo.FindByTokenHash(ctx, hashToken(input.RefreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to load refresh token")
		}

		if stored.UserID != claims.UserID || stored.Expired(time.Now()) {
			return domainerrors.ErrRefreshTokenInvalid
		}

		if err := tokenRepo.DeleteByID(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}

		user, err = userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to load user for refresh")
		}

		output, err = srv.issueTokens(ctx, tokenRepo, user)

		return err
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Logout revokes the session behind the refresh token. Revoking an unknown
// token succeeds; logout is idempotent.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, hashToken(input.RefreshToken)); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// openSession issues a token pair inside a transaction that also enforces the
// active-session cap.
func (srv *userService) openSession(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	var output *usecase.LoginOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		output, err = srv.issueTokens(ctx, repoFactory.RefreshTokenRepo(), user)

		return err
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// issueTokens generates a token pair, stores the refresh token hash, and
// trims the user's sessions to the configured cap.
func (srv *userService) issueTokens(ctx context.Context, tokenRepo repository.RefreshTokenRepository, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	record := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := tokenRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	if srv.maxActiveSessions > 0 {
		count, err := tokenRepo.CountByUser(ctx, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count sessions")
		}
		if count > int64(srv.maxActiveSessions) {
			if err := tokenRepo.DeleteOldestByUser(ctx, user.ID, srv.maxActiveSessions); err != nil {
				return nil, errors.Wrap(err, "failed to trim sessions")
			}

			srv.log(ctx).Info("Trimmed oldest sessions over cap", slog.String("user_id", user.ID.String()))
		}
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// hashToken stores refresh tokens by digest, so a leaked sessions table
// cannot be replayed.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// mapUserError folds user-repository sentinels into the caller-facing taxonomy.
func mapUserError(err error, msg string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrNotFound.WrapMessage("user not found")
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, msg)
}

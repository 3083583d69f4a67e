// Package google verifies Google-issued ID tokens for the sign-in flow.
package google

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"

	"rolodex/config"
	"rolodex/internal/domain/service"
)

// validatorFunc matches idtoken.Validate, injectable for tests.
type validatorFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// verifier implements service.OAuthVerifier against Google's token
// verification endpoint.
type verifier struct {
	clientID string
	logger   *slog.Logger
	validate validatorFunc
}

// NewVerifier is the constructor for the Google ID token verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.OAuthVerifier {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &verifier{
		clientID: clientID,
		logger:   logger,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken validates the token signature and audience, then extracts the
// user's identity claims.
func (v *verifier) VerifyIDToken(ctx context.Context, token string) (*service.OAuthUser, error) {
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		v.logger.WarnContext(ctx, "google id token validation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}
	if user.Email == "" {
		return nil, errors.New("ID token missing email claim")
	}
	if !user.EmailVerified {
		return nil, errors.New("email not verified")
	}

	v.logger.InfoContext(ctx, "google id token verified",
		slog.String("sub", user.ID),
		slog.String("email", user.Email))

	return user, nil
}

func claimString(claims map[string]any, key string) string {
	s, _ := claims[key].(string)

	return s
}

func claimBool(claims map[string]any, key string) bool {
	b, _ := claims[key].(bool)

	return b
}

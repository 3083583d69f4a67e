package google

import (
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/idtoken"
)

func newTestVerifier(validate validatorFunc) *verifier {
	return &verifier{
		clientID: "test-client-id",
		logger:   slog.Default(),
		validate: validate,
	}
}

func TestVerifyIDToken_Success(t *testing.T) {
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-token", token)
		assert.Equal(t, "test-client-id", audience)

		return &idtoken.Payload{
			Subject: "google-sub-123",
			Claims: map[string]any{
				"email":          "user@example.com",
				"email_verified": true,
				"name":           "Test User",
			},
		}, nil
	})

	user, err := v.VerifyIDToken(context.Background(), "raw-token")
	assert.NoError(t, err)
	assert.Equal(t, "google-sub-123", user.ID)
	assert.Equal(t, "user@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.True(t, user.EmailVerified)
}

func TestVerifyIDToken_ValidationError(t *testing.T) {
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return nil, errors.New("token expired")
	})

	user, err := v.VerifyIDToken(context.Background(), "raw-token")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "invalid ID token")
}

func TestVerifyIDToken_MissingEmail(t *testing.T) {
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Subject: "google-sub-123",
			Claims:  map[string]any{"email_verified": true},
		}, nil
	})

	user, err := v.VerifyIDToken(context.Background(), "raw-token")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "missing email")
}

func TestVerifyIDToken_UnverifiedEmail(t *testing.T) {
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Subject: "google-sub-123",
			Claims: map[string]any{
				"email":          "user@example.com",
				"email_verified": false,
			},
		}, nil
	})

	user, err := v.VerifyIDToken(context.Background(), "raw-token")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "email not verified")
}

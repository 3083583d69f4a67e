package service

import "context"

// OAuthUser represents user information returned by an identity provider.
type OAuthUser struct {
	ID            string // Provider-specific user ID (Google's 'sub' claim).
	Email         string
	Name          string
	EmailVerified bool
}

// OAuthVerifier verifies provider-issued ID tokens. Used for Google Sign-In,
// where the client sends an ID token directly.
type OAuthVerifier interface {
	// VerifyIDToken verifies an ID token and returns the provider's user info.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}

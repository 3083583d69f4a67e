package usecase

import (
	"context"

	"rolodex/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginInput carries the Google-issued ID token from the client.
type GoogleLoginInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RefreshInput carries the refresh token being exchanged.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutInput revokes the session behind the refresh token.
type LogoutInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User `json:"user"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// UserUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	LoginWithGoogle(ctx context.Context, input *GoogleLoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*LoginOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}

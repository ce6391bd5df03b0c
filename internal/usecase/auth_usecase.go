package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput defines the data required to refresh a session.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LoginOutput returns the generated tokens after a successful login or refresh.
// The tokens carry the session: user id, role, name and email travel inside
// the claims instead of any process-wide state.
type LoginOutput struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *entity.User `json:"user"`
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	// Login verifies the credentials and issues a token pair. Unknown email
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a fresh token pair.
	Refresh(ctx context.Context, input *RefreshInput) (*LoginOutput, error)
}

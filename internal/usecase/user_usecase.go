// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"clinic/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a new user of any role.
type RegisterUserInput struct {
	Role     string `json:"role" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateProfileInput defines the optional profile fields an update may carry.
// Empty fields are left unchanged.
type UpdateProfileInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new user with a generated id and hashed password.
	// The email must not be in use by another user, compared case-insensitively.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// FindByID returns one user by id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// ListAll returns every user in insertion order.
	ListAll(ctx context.Context) ([]entity.User, error)

	// ListByRole returns the users matching the role string, ignoring case.
	// An unknown role string yields an empty list, not an error.
	ListByRole(ctx context.Context, role string) ([]entity.User, error)

	// UpdateProfile applies the non-empty fields of input to the user.
	// A changed email must validate and stay unique among the other users;
	// a supplied password is re-hashed.
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.User, error)

	// Delete removes the user by id. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}

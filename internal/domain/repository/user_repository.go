// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"clinic/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
//
// Listing operations return records in file order, which equals insertion
// order. Identifier and email comparisons are case-insensitive.
type UserRepository interface {
	// ListAll returns every stored user in insertion order.
	ListAll(ctx context.Context) ([]entity.User, error)

	// FindByID retrieves a single user by their id, e.g. "U001".
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByName retrieves a single user by their exact display name.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// SaveOrUpdate replaces the stored user with the same id in place, or
	// appends the user when no record matches.
	SaveOrUpdate(ctx context.Context, user *entity.User) error

	// Delete removes the user with the given id. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}

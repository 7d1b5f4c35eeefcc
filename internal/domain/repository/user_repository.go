// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"userhub/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
// It is distinct from store failures, which repositories report as wrapped
// database errors.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete
// implementation. All inputs reach the store as bound parameters.
type UserRepository interface {
	// Create persists a new user and fills in the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every user, ordered by ID.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update replaces name, email and password hash of an existing user and
	// reports the number of affected rows. Zero means the row vanished.
	Update(ctx context.Context, user *entity.User) (int64, error)

	// Delete removes a user by ID and reports the number of affected rows.
	Delete(ctx context.Context, id uint) (int64, error)
}

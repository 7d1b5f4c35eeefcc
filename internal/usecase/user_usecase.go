// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"userhub/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a new user.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput defines the data required to update a user. All fields are
// mandatory: an update replaces name, email and password in one shot, and the
// password is re-hashed and rotated even if the caller resent the old one.
type UpdateUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthenticateInput defines the data required to open a session.
type AuthenticateInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthenticateOutput returns the authenticated user and a session token.
// The user's stored secret never appears here.
type AuthenticateOutput struct {
	User        *entity.User
	AccessToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// CreateUser validates the input, hashes the password and persists the
	// new user, returning it with the store-generated ID.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// Authenticate verifies an email/password pair. Unknown email and wrong
	// password yield the identical invalid-credentials error.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)

	// GetUser retrieves a single user by ID.
	GetUser(ctx context.Context, id uint) (*entity.User, error)

	// ListUsers retrieves every user. No pagination at this scale.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser replaces name, email and password of an existing user.
	// A missing user is reported, never silently ignored.
	UpdateUser(ctx context.Context, id uint, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes a user by ID. Deleting an absent user reports
	// not-found, so a second delete of the same ID fails cleanly.
	DeleteUser(ctx context.Context, id uint) error
}

// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"userhub/internal/domain/entity"
	domainerrors "userhub/internal/domain/errors"
	"userhub/internal/domain/repository"
	"userhub/internal/domain/service"
	"userhub/internal/errors"
	"userhub/internal/usecase"
)

// userService implements the UserUsecase interface. It owns the full record
// lifecycle: validation, existence checks, credential hashing and store
// calls. It holds no state of its own between requests; everything lives in
// the injected repository.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// CreateUser validates the input, hashes the password and persists the user.
// Email uniqueness is left to the store constraint; a violation surfaces
// from the repository as the conflict error.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if err := requireFields(map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
	}); err != nil {
		return nil, err
	}

	srv.logger.Info("Creating user", "email", input.Email)

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during create", "error", err)

		return nil, classifyHashError(err)
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Debug("User created", "userID", user.ID)

	return user, nil
}

// Authenticate looks up the user by email and verifies the password. The two
// failure causes collapse into one error kind so callers cannot probe which
// emails exist.
func (srv *userService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	if err := requireFields(map[string]string{
		"email":    input.Email,
		"password": input.Password,
	}); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")
		}

		return nil, errors.Wrap(err, "failed to look up user for authentication")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")
	}

	token, err := srv.tokenSvc.GenerateToken(user.ID)
	if err != nil {
		srv.logger.Error("Failed to issue access token", "error", err, "userID", user.ID)

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to issue access token")
	}

	srv.logger.Info("User authenticated", "userID", user.ID)

	return &usecase.AuthenticateOutput{User: user, AccessToken: token}, nil
}

// GetUser retrieves a single user by ID.
func (srv *userService) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	if id == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("id must be a positive integer")
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ListUsers retrieves every user.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser replaces every mutable field of the user. The existence check
// runs first so an absent ID reports not-found instead of a silent no-op;
// the password is re-hashed unconditionally. No transaction spans the check
// and the update: if a concurrent delete wins the race, the zero affected-row
// count maps to the same not-found outcome.
func (srv *userService) UpdateUser(ctx context.Context, id uint, input *usecase.UpdateUserInput) (*entity.User, error) {
	if id == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("id must be a positive integer")
	}
	if err := requireFields(map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
	}); err != nil {
		return nil, err
	}

	srv.logger.Info("Updating user", "userID", id)

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("update target not found")
		}

		return nil, errors.Wrap(err, "failed to find user for update")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during update", "error", err, "userID", id)

		return nil, classifyHashError(err)
	}

	user.Name = input.Name
	user.Email = input.Email
	user.PasswordHash = hashed

	affected, err := srv.userRepo.Update(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}
	if affected == 0 {
		// Lost the race against a concurrent delete.
		return nil, domainerrors.ErrUserNotFound.WrapMessage("user vanished during update")
	}

	srv.logger.Debug("User updated", "userID", id)

	return user, nil
}

// DeleteUser removes a user by ID. The existence check makes the second
// delete of the same ID report not-found; a zero affected-row count after a
// positive check is the same lost race as in UpdateUser.
func (srv *userService) DeleteUser(ctx context.Context, id uint) error {
	if id == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("id must be a positive integer")
	}

	srv.logger.Info("Deleting user", "userID", id)

	if _, err := srv.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("delete target not found")
		}

		return errors.Wrap(err, "failed to find user for delete")
	}

	affected, err := srv.userRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	if affected == 0 {
		return domainerrors.ErrUserNotFound.WrapMessage("user vanished during delete")
	}

	srv.logger.Debug("User deleted", "userID", id)

	return nil
}

// requireFields reports the first empty field as a validation error.
// Whitespace-only values count as empty.
func requireFields(fields map[string]string) error {
	for _, name := range []string{"name", "email", "password"} {
		value, ok := fields[name]
		if !ok {
			continue
		}
		if strings.TrimSpace(value) == "" {
			return domainerrors.ErrValidationFailed.WrapMessage(name + " is required")
		}
	}

	return nil
}

// classifyHashError keeps the distinct hash-failed condition if the hasher
// already reported one, and classifies anything else the same way.
func classifyHashError(err error) error {
	if errors.Is(err, domainerrors.ErrPasswordHashFailed) {
		return err
	}

	return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
}

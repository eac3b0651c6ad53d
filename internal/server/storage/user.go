package storage

import (
	"context"

	"github.com/scholaredit/scholaredit/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage.
	// Returns ErrUserAlreadyExists if the email is already registered;
	// uniqueness is enforced by the store itself, not by a prior lookup.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by email
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

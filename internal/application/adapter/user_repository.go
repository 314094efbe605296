// Package adapter defines interfaces for external dependencies of use cases.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fynora/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	// Returns domain error ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	// Returns domain error ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error
}

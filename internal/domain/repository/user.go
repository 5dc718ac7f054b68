package repository

import (
	"context"

	"apptracker/internal/domain/constant"
	"apptracker/internal/domain/entity"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// FindByEmail retrieves a user by email (case-insensitive).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByLineUserID retrieves the user linked to a LINE account.
	FindByLineUserID(ctx context.Context, lineUserID string) (*entity.User, error)
	// FindByLineLinkCode retrieves the user holding a pending LINE link code.
	FindByLineLinkCode(ctx context.Context, code string) (*entity.User, error)
	// ListIDs returns the IDs of all users, optionally restricted to one role.
	ListIDs(ctx context.Context, role constant.Role) ([]string, error)
	// Count returns the number of users.
	Count(ctx context.Context) (int64, error)
	// Create creates a new user.
	Create(ctx context.Context, user *entity.User) error
	// Update saves every field of an existing user.
	Update(ctx context.Context, user *entity.User) error
}

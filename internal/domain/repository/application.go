package repository

import (
	"context"
	"time"

	"apptracker/internal/domain/entity"
)

// ApplicationRepository defines the interface for application data operations.
// Returned applications carry their University and Program.
type ApplicationRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Application, error)
	// FindByUserID retrieves a user's applications, newest first.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Application, error)
	Create(ctx context.Context, application *entity.Application) error
	// Update applies a partial update in one statement.
	Update(ctx context.Context, id string, patch entity.ApplicationPatch, at time.Time) error
	Delete(ctx context.Context, id string) error
}

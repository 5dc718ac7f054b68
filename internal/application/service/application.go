package service

import (
	"context"

	"apptracker/internal/application/dto"
)

// ApplicationService defines the interface for application-related business logic.
// Status changes and new decisions notify the application's owner.
type ApplicationService interface {
	// List retrieves the actor's applications, newest first.
	List(ctx context.Context, actor dto.Actor) ([]dto.ApplicationResponse, error)
	Get(ctx context.Context, actor dto.Actor, id string) (*dto.ApplicationResponse, error)
	Create(ctx context.Context, actor dto.Actor, req dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	// Update applies a partial update. Fields left nil keep their stored values.
	Update(ctx context.Context, actor dto.Actor, id string, req dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error)
	Delete(ctx context.Context, actor dto.Actor, id string) error
	Stats(ctx context.Context, actor dto.Actor) (*dto.ApplicationStats, error)
}

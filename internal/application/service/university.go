package service

import (
	"context"

	"apptracker/internal/application/dto"
)

// UniversityService defines the interface for the university catalog.
// Reads are open to every signed-in user; writes need an admin.
type UniversityService interface {
	List(ctx context.Context, search, country string) ([]dto.UniversityResponse, error)
	Get(ctx context.Context, id string) (*dto.UniversityResponse, error)
	Countries(ctx context.Context) ([]string, error)
	Programs(ctx context.Context, universityID string) ([]dto.ProgramResponse, error)

	Create(ctx context.Context, actor dto.Actor, req dto.UniversityRequest) (*dto.UniversityResponse, error)
	Update(ctx context.Context, actor dto.Actor, id string, req dto.UniversityRequest) (*dto.UniversityResponse, error)
	// Delete removes a university with its programs and the applications to it.
	Delete(ctx context.Context, actor dto.Actor, id string) error
	CreateProgram(ctx context.Context, actor dto.Actor, universityID string, req dto.ProgramRequest) (*dto.ProgramResponse, error)
}

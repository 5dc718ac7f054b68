package repository

import (
	"context"

	"apptracker/internal/domain/entity"
)

// UniversityFilter narrows FindAll.
type UniversityFilter struct {
	Search  string // Matches name, country or city
	Country string
}

// UniversityRepository defines the interface for university and program data operations.
type UniversityRepository interface {
	FindAll(ctx context.Context, filter UniversityFilter) ([]*entity.University, error)
	FindByID(ctx context.Context, id string) (*entity.University, error)
	// Countries returns the distinct countries, alphabetically.
	Countries(ctx context.Context) ([]string, error)
	Create(ctx context.Context, university *entity.University) error
	Update(ctx context.Context, university *entity.University) error
	Delete(ctx context.Context, id string) error

	FindPrograms(ctx context.Context, universityID string) ([]*entity.Program, error)
	FindProgramByID(ctx context.Context, id string) (*entity.Program, error)
	CreateProgram(ctx context.Context, program *entity.Program) error
}

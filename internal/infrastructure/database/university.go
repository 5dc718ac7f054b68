package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"apptracker/internal/domain/entity"
	"apptracker/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type universityRepository struct {
	db *gorm.DB
}

// NewUniversityRepository creates a new instance of UniversityRepository.
func NewUniversityRepository(db *gorm.DB) repository.UniversityRepository {
	return &universityRepository{db: db}
}

// FindAll lists universities by ranking (unranked last), then name.
func (r *universityRepository) FindAll(ctx context.Context, filter repository.UniversityFilter) ([]*entity.University, error) {
	var universities []*entity.University
	q := r.db.WithContext(ctx).Model(&entity.University{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(country) LIKE ? OR LOWER(city) LIKE ?)", like, like, like)
	}
	if country := strings.TrimSpace(filter.Country); country != "" {
		q = q.Where("country = ?", country)
	}
	err := q.Order("CASE WHEN ranking IS NULL THEN 1 ELSE 0 END").
		Order("ranking asc").
		Order("name asc").
		Find(&universities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list universities: %w", err)
	}
	return universities, nil
}

// FindByID retrieves a university by its ID.
func (r *universityRepository) FindByID(ctx context.Context, id string) (*entity.University, error) {
	var university entity.University
	if err := r.db.WithContext(ctx).First(&university, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("university with ID %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find university by id %s: %w", id, err)
	}
	return &university, nil
}

// Countries returns the distinct countries, alphabetically.
func (r *universityRepository) Countries(ctx context.Context) ([]string, error) {
	var countries []string
	err := r.db.WithContext(ctx).Model(&entity.University{}).
		Distinct("country").
		Order("country asc").
		Pluck("country", &countries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return countries, nil
}

// Create creates a new university.
func (r *universityRepository) Create(ctx context.Context, university *entity.University) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(university).Error; err != nil {
		return fmt.Errorf("failed to create university %s: %w", university.Name, err)
	}
	return nil
}

// Update saves every field of an existing university.
func (r *universityRepository) Update(ctx context.Context, university *entity.University) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(university).Error; err != nil {
		return fmt.Errorf("failed to update university %s: %w", university.ID, err)
	}
	return nil
}

// Delete removes a university together with its programs and the applications to it.
func (r *universityRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("university_id = ?", id).Delete(&entity.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("university_id = ?", id).Delete(&entity.Program{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entity.University{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("university with ID %s not found: %w", id, err)
		}
		return fmt.Errorf("failed to delete university %s: %w", id, err)
	}
	return nil
}

// FindPrograms lists a university's programs by degree, then name.
func (r *universityRepository) FindPrograms(ctx context.Context, universityID string) ([]*entity.Program, error) {
	var programs []*entity.Program
	err := r.db.WithContext(ctx).
		Where("university_id = ?", universityID).
		Order("degree_type asc").
		Order("name asc").
		Find(&programs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list programs of university %s: %w", universityID, err)
	}
	return programs, nil
}

// FindProgramByID retrieves a program by its ID.
func (r *universityRepository) FindProgramByID(ctx context.Context, id string) (*entity.Program, error) {
	var program entity.Program
	if err := r.db.WithContext(ctx).First(&program, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("program with ID %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find program by id %s: %w", id, err)
	}
	return &program, nil
}

// CreateProgram creates a new program.
func (r *universityRepository) CreateProgram(ctx context.Context, program *entity.Program) error {
	if err := r.db.WithContext(ctx).Create(program).Error; err != nil {
		return fmt.Errorf("failed to create program %s: %w", program.Name, err)
	}
	return nil
}

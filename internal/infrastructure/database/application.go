package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"apptracker/internal/domain/entity"
	"apptracker/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new instance of ApplicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("University").Preload("Program")
}

// FindByID retrieves an application by its ID.
func (r *applicationRepository) FindByID(ctx context.Context, id string) (*entity.Application, error) {
	var application entity.Application
	if err := r.withRelations(ctx).First(&application, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application with ID %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find application by id %s: %w", id, err)
	}
	return &application, nil
}

// FindByUserID retrieves a user's applications, newest first.
func (r *applicationRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Application, error) {
	var applications []*entity.Application
	err := r.withRelations(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Order("id asc").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find applications by user_id %s: %w", userID, err)
	}
	return applications, nil
}

// Create creates a new application.
func (r *applicationRepository) Create(ctx context.Context, application *entity.Application) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(application).Error; err != nil {
		return fmt.Errorf("failed to create application for user %s: %w", application.UserID, err)
	}
	return nil
}

// Update applies only the fields present in patch.
func (r *applicationRepository) Update(ctx context.Context, id string, patch entity.ApplicationPatch, at time.Time) error {
	fields := map[string]interface{}{"updated_at": at.UTC()}
	if patch.Status != nil {
		fields["status"] = string(*patch.Status)
	}
	if patch.Priority != nil {
		fields["priority"] = string(*patch.Priority)
	}
	if patch.ProgramID != nil {
		fields["program_id"] = *patch.ProgramID
	}
	if patch.SubmissionDate != nil {
		fields["submission_date"] = patch.SubmissionDate.UTC()
	}
	if patch.DecisionDate != nil {
		fields["decision_date"] = patch.DecisionDate.UTC()
	}
	if patch.Decision != nil {
		fields["decision"] = string(*patch.Decision)
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	result := r.db.WithContext(ctx).Model(&entity.Application{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update application %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application with ID %s not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete deletes an application by its ID.
func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Application{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete application %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application with ID %s not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

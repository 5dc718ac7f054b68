package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"apptracker/internal/domain/entity"
	"apptracker/internal/domain/repository"

	"gorm.io/gorm"
)

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new instance of ReminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// FindByID retrieves a reminder by its ID.
func (r *reminderRepository) FindByID(ctx context.Context, id string) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := r.db.WithContext(ctx).First(&reminder, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reminder with ID %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find reminder by id %s: %w", id, err)
	}
	return &reminder, nil
}

// FindByUserID retrieves all reminders for a specific user.
func (r *reminderRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("failed to find reminders by user_id %s: %w", userID, err)
	}
	return reminders, nil
}

// FindUpcoming retrieves incomplete reminders due at or before until, earliest first.
func (r *reminderRepository) FindUpcoming(ctx context.Context, userID string, until time.Time) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_completed = ? AND due_date <= ?", userID, false, until.UTC()).
		Order("due_date asc").
		Order("id asc").
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find upcoming reminders by user_id %s: %w", userID, err)
	}
	return reminders, nil
}

// FindDueForNotification retrieves reminders that still need a deadline notification.
func (r *reminderRepository) FindDueForNotification(ctx context.Context, from, until time.Time) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	err := r.db.WithContext(ctx).
		Where("is_completed = ? AND notified_at IS NULL AND due_date > ? AND due_date <= ?", false, from.UTC(), until.UTC()).
		Order("due_date asc").
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find reminders due before %v: %w", until, err)
	}
	return reminders, nil
}

// Create creates a new reminder.
func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	reminder.DueDate = reminder.DueDate.UTC()
	if err := r.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return fmt.Errorf("failed to create reminder for user %s: %w", reminder.UserID, err)
	}
	return nil
}

// Update applies only the fields present in patch.
func (r *reminderRepository) Update(ctx context.Context, id string, patch entity.ReminderPatch, at time.Time) error {
	fields := map[string]interface{}{"updated_at": at.UTC()}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.DueDate != nil {
		fields["due_date"] = patch.DueDate.UTC()
		// A new due date deserves a new deadline notification.
		fields["notified_at"] = nil
	}
	if patch.Priority != nil {
		fields["priority"] = string(*patch.Priority)
	}
	if patch.Category != nil {
		fields["category"] = string(*patch.Category)
	}
	if patch.Complete {
		fields["is_completed"] = true
	}

	result := r.db.WithContext(ctx).Model(&entity.Reminder{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update reminder %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reminder with ID %s not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// MarkCompleted completes the reminder unless it already is.
func (r *reminderRepository) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&entity.Reminder{}).
		Where("id = ? AND is_completed = ?", id, false).
		Updates(map[string]interface{}{"is_completed": true, "updated_at": at.UTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to complete reminder %s: %w", id, result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Reminder{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check reminder %s: %w", id, err)
	}
	if count == 0 {
		return fmt.Errorf("reminder with ID %s not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// MarkNotified stamps the time a deadline notification was sent.
func (r *reminderRepository) MarkNotified(ctx context.Context, id string, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&entity.Reminder{}).
		Where("id = ?", id).
		UpdateColumn("notified_at", at.UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to mark reminder %s notified: %w", id, err)
	}
	return nil
}

// Delete deletes a reminder by its ID.
func (r *reminderRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Reminder{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete reminder %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reminder with ID %s not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

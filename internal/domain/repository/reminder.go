package repository

import (
	"context"
	"time"

	"apptracker/internal/domain/entity"
)

// ReminderRepository defines the interface for reminder data operations.
type ReminderRepository interface {
	// FindByID retrieves a reminder by its ID.
	FindByID(ctx context.Context, id string) (*entity.Reminder, error)
	// FindByUserID retrieves all reminders for a specific user, in no particular order.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error)
	// FindUpcoming retrieves incomplete reminders due at or before until, earliest first.
	FindUpcoming(ctx context.Context, userID string, until time.Time) ([]*entity.Reminder, error)
	// FindDueForNotification retrieves incomplete, not yet notified reminders
	// of every user due in (from, until].
	FindDueForNotification(ctx context.Context, from, until time.Time) ([]*entity.Reminder, error)
	// Create creates a new reminder.
	Create(ctx context.Context, reminder *entity.Reminder) error
	// Update applies a partial update in one statement.
	Update(ctx context.Context, id string, patch entity.ReminderPatch, at time.Time) error
	// MarkCompleted completes an incomplete reminder. Completed reminders are left untouched.
	MarkCompleted(ctx context.Context, id string, at time.Time) error
	// MarkNotified records that a deadline notification was sent.
	MarkNotified(ctx context.Context, id string, at time.Time) error
	// Delete deletes a reminder by its ID.
	Delete(ctx context.Context, id string) error
}

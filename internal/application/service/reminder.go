package service

import (
	"context"

	"apptracker/internal/application/dto"
)

// DefaultUpcomingDays is the window used when ListUpcoming is asked for no positive number of days.
const DefaultUpcomingDays = 7

// ReminderService defines the interface for reminder-related business logic.
// Every operation on an existing reminder requires the actor to own it or be an admin.
type ReminderService interface {
	// Create creates an incomplete reminder owned by the actor.
	Create(ctx context.Context, actor dto.Actor, req dto.CreateReminderRequest) (*dto.ReminderResponse, error)
	// Get retrieves one reminder.
	Get(ctx context.Context, actor dto.Actor, id string) (*dto.ReminderResponse, error)
	// List retrieves the actor's reminders, most urgent first.
	List(ctx context.Context, actor dto.Actor) ([]dto.ReminderResponse, error)
	// ListUpcoming retrieves incomplete reminders due within days, earliest first.
	ListUpcoming(ctx context.Context, actor dto.Actor, days int) ([]dto.ReminderResponse, error)
	// Update applies a partial update. Fields left nil keep their stored values.
	Update(ctx context.Context, actor dto.Actor, id string, req dto.UpdateReminderRequest) (*dto.ReminderResponse, error)
	// MarkCompleted completes a reminder. Completing it again changes nothing.
	MarkCompleted(ctx context.Context, actor dto.Actor, id string) (*dto.ReminderResponse, error)
	Delete(ctx context.Context, actor dto.Actor, id string) error
	Stats(ctx context.Context, actor dto.Actor) (*dto.ReminderStats, error)
}

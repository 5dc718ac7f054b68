package service

import (
	"context"

	"apptracker/internal/application/dto"
)

// DashboardService aggregates the actor's applications, reminders and notifications.
type DashboardService interface {
	Stats(ctx context.Context, actor dto.Actor) (*dto.DashboardStats, error)
}

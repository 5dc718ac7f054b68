package repository

import (
	"context"

	"apptracker/internal/domain/entity"
)

// NotificationFilter narrows FindByUserID.
type NotificationFilter struct {
	UnreadOnly bool
	Limit      int // Zero means no limit
}

// NotificationRepository defines the interface for notification data operations.
type NotificationRepository interface {
	// Create creates a new notification.
	Create(ctx context.Context, notification *entity.Notification) error
	// CreateBatch creates several notifications in one transaction.
	CreateBatch(ctx context.Context, notifications []*entity.Notification) error
	// FindByID retrieves a notification by its ID.
	FindByID(ctx context.Context, id string) (*entity.Notification, error)
	// FindByUserID retrieves a user's notifications, newest first.
	FindByUserID(ctx context.Context, userID string, filter NotificationFilter) ([]*entity.Notification, error)
	// CountUnread counts a user's unread notifications.
	CountUnread(ctx context.Context, userID string) (int64, error)
	// MarkRead marks one notification read.
	MarkRead(ctx context.Context, id string) error
	// MarkAllRead marks every unread notification of a user read in one transaction.
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	// Delete deletes a notification by its ID.
	Delete(ctx context.Context, id string) error
}

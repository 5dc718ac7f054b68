package service

import (
	"context"

	"apptracker/internal/application/dto"
)

// NotificationService defines the interface for notification-related business logic.
// End users can read, mark and delete their notifications; only the system creates them.
type NotificationService interface {
	// List retrieves the actor's notifications, newest first.
	List(ctx context.Context, actor dto.Actor, query dto.NotificationQuery) ([]dto.NotificationResponse, error)
	// UnreadCount counts the actor's unread notifications.
	UnreadCount(ctx context.Context, actor dto.Actor) (int64, error)
	// MarkRead marks one notification read. Marking it again changes nothing.
	MarkRead(ctx context.Context, actor dto.Actor, id string) (*dto.NotificationResponse, error)
	// MarkAllRead marks every notification of the actor read and returns how many changed.
	MarkAllRead(ctx context.Context, actor dto.Actor) (int64, error)
	Delete(ctx context.Context, actor dto.Actor, id string) error
	// Notifier creates system notifications.
	Notifier
	// Broadcast sends an admin-authored system alert to one user or to everyone.
	Broadcast(ctx context.Context, actor dto.Actor, req dto.BroadcastRequest) (int, error)
}

// Notifier creates a notification rendered in the recipient's language and
// forwards it to their LINE account when one is linked.
type Notifier interface {
	Notify(ctx context.Context, req dto.NotifyRequest) (*dto.NotificationResponse, error)
}

// MessagePusher delivers plain text to a LINE user.
type MessagePusher interface {
	PushText(to, text string) error
}

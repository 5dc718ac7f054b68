package dto

import (
	"time"

	"apptracker/internal/domain/constant"
	"apptracker/internal/domain/entity"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	ActionURL *string   `json:"actionUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		ActionURL: n.ActionURL,
		CreatedAt: n.CreatedAt,
	}
}

func ToNotificationResponseList(notifications []*entity.Notification) []NotificationResponse {
	list := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		list[i] = ToNotificationResponse(n)
	}
	return list
}

// NotificationQuery narrows a notification listing.
type NotificationQuery struct {
	UnreadOnly bool
	Limit      int
}

// NotifyRequest describes a system notification. Title and message are
// message keys rendered in the recipient's language.
type NotifyRequest struct {
	UserID     string
	Type       constant.NotificationType
	TitleKey   string
	MessageKey string
	Params     map[string]string
	ParamKeys  map[string]string // Values are message keys, translated before substitution
	ActionURL  string
}

// BroadcastRequest is an admin-authored system alert. Without UserID it goes to every user.
type BroadcastRequest struct {
	UserID    string `json:"userId"`
	Title     string `json:"title" validate:"max=255"`
	Message   string `json:"message"`
	ActionURL string `json:"actionUrl" validate:"omitempty,max=500"`
}

package entity

import (
	"time"

	"apptracker/internal/domain/constant"

	"gorm.io/gorm"
)

// Notification is a system-created message for one user.
type Notification struct {
	ID        string                    `gorm:"type:varchar(36);primaryKey"`
	UserID    string                    `gorm:"column:user_id;type:varchar(36);not null;index:idx_notifications_user_read"`
	Type      constant.NotificationType `gorm:"size:30;not null"`
	Title     string                    `gorm:"size:255;not null"`
	Message   string                    `gorm:"type:text;not null"`
	IsRead    bool                      `gorm:"column:is_read;not null;default:false;index:idx_notifications_user_read"`
	ActionURL *string                   `gorm:"column:action_url;size:500"`
	CreatedAt time.Time                 `gorm:"index"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	n.ID = newID(n.ID)
	return nil
}

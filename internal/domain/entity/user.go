package entity

import (
	"time"

	"apptracker/internal/domain/constant"

	"gorm.io/gorm"
)

// User is an account that owns applications, reminders and notifications.
type User struct {
	ID           string        `gorm:"type:varchar(36);primaryKey"`
	Email        string        `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string        `gorm:"column:password_hash;not null"`
	Name         string        `gorm:"size:100;not null"`
	Role         constant.Role `gorm:"size:20;not null;default:student"`
	Phone        *string       `gorm:"size:50"`
	Address      *string       `gorm:"type:text"`
	Avatar       *string       `gorm:"size:500"`
	Language     string        `gorm:"size:8;not null;default:zh"` // Language of system-generated notifications
	LineUserID   *string       `gorm:"column:line_user_id;size:64;uniqueIndex"`
	LineLinkCode *string       `gorm:"column:line_link_code;size:16;uniqueIndex"` // One-time code sent to the LINE bot to link an account
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.ID = newID(u.ID)
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == constant.RoleAdmin
}

package entity

import (
	"time"

	"apptracker/internal/domain/constant"

	"gorm.io/gorm"
)

// Reminder is a user-created deadline.
type Reminder struct {
	ID          string            `gorm:"type:varchar(36);primaryKey"`
	UserID      string            `gorm:"column:user_id;type:varchar(36);not null;index"`
	Title       string            `gorm:"size:255;not null"`
	Description string            `gorm:"type:text"`
	DueDate     time.Time         `gorm:"column:due_date;not null;index"`
	Priority    constant.Priority `gorm:"size:10;not null;default:medium"`
	Category    constant.Category `gorm:"size:20;not null;default:other"`
	IsCompleted bool              `gorm:"column:is_completed;not null;default:false"`
	NotifiedAt  *time.Time        `gorm:"column:notified_at"` // Set once a deadline notification went out for the current due date
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Reminder) TableName() string {
	return "reminders"
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	r.ID = newID(r.ID)
	return nil
}

// ReminderPatch lists the fields of a partial update. Nil means unchanged.
type ReminderPatch struct {
	Title       *string
	Description *string // Empty string clears the description
	DueDate     *time.Time
	Priority    *constant.Priority
	Category    *constant.Category
	Complete    bool // Marks the reminder completed; never reopens
}

// Empty reports whether the patch changes nothing.
func (p ReminderPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.Priority == nil && p.Category == nil && !p.Complete
}

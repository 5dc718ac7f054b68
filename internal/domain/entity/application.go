package entity

import (
	"time"

	"apptracker/internal/domain/constant"

	"gorm.io/gorm"
)

// Application is one user's application to a university program.
type Application struct {
	ID             string                     `gorm:"type:varchar(36);primaryKey"`
	UserID         string                     `gorm:"column:user_id;type:varchar(36);not null;index"`
	UniversityID   string                     `gorm:"column:university_id;type:varchar(36);not null;index"`
	ProgramID      *string                    `gorm:"column:program_id;type:varchar(36)"`
	Status         constant.ApplicationStatus `gorm:"size:30;not null;default:not_started"`
	Priority       constant.Priority          `gorm:"size:10;not null;default:medium"`
	SubmissionDate *time.Time                 `gorm:"column:submission_date"`
	DecisionDate   *time.Time                 `gorm:"column:decision_date"`
	Decision       *constant.Decision         `gorm:"size:20"`
	Notes          *string                    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	University *University `gorm:"foreignKey:UniversityID;constraint:OnDelete:CASCADE"`
	Program    *Program    `gorm:"foreignKey:ProgramID;constraint:OnDelete:SET NULL"`
}

func (Application) TableName() string {
	return "applications"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	a.ID = newID(a.ID)
	return nil
}

// ApplicationPatch lists the fields of a partial update. Nil means unchanged.
type ApplicationPatch struct {
	Status         *constant.ApplicationStatus
	Priority       *constant.Priority
	ProgramID      *string
	SubmissionDate *time.Time
	DecisionDate   *time.Time
	Decision       *constant.Decision
	Notes          *string
}

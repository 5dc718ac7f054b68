package entity

import (
	"time"

	"apptracker/internal/domain/constant"

	"gorm.io/gorm"
)

type University struct {
	ID                   string     `gorm:"type:varchar(36);primaryKey"`
	Name                 string     `gorm:"size:255;not null;index"`
	Country              string     `gorm:"size:100;not null;index"`
	State                *string    `gorm:"size:100"`
	City                 *string    `gorm:"size:100"`
	Website              *string    `gorm:"size:500"`
	Description          *string    `gorm:"type:text"`
	Ranking              *int
	AcceptanceRate       *float64   `gorm:"column:acceptance_rate"`
	TuitionDomestic      *float64   `gorm:"column:tuition_domestic"`
	TuitionInternational *float64   `gorm:"column:tuition_international"`
	ApplicationDeadline  *time.Time `gorm:"column:application_deadline"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Programs []Program `gorm:"foreignKey:UniversityID;constraint:OnDelete:CASCADE"`
}

func (University) TableName() string {
	return "universities"
}

func (u *University) BeforeCreate(tx *gorm.DB) error {
	u.ID = newID(u.ID)
	return nil
}

type Program struct {
	ID                string              `gorm:"type:varchar(36);primaryKey"`
	UniversityID      string              `gorm:"column:university_id;type:varchar(36);not null;index"`
	Name              string              `gorm:"size:255;not null"`
	DegreeType        constant.DegreeType `gorm:"column:degree_type;size:20;not null"`
	Duration          *int                // Months
	TuitionFee        *float64            `gorm:"column:tuition_fee"`
	MinGPA            *float64            `gorm:"column:min_gpa"`
	MinSAT            *int                `gorm:"column:min_sat"`
	MinACT            *int                `gorm:"column:min_act"`
	MinTOEFL          *int                `gorm:"column:min_toefl"`
	MinIELTS          *float64            `gorm:"column:min_ielts"`
	RequiredDocuments string              `gorm:"column:required_documents;type:text"` // Comma separated
	OptionalDocuments string              `gorm:"column:optional_documents;type:text"`
	Description       *string             `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Program) TableName() string {
	return "programs"
}

func (p *Program) BeforeCreate(tx *gorm.DB) error {
	p.ID = newID(p.ID)
	return nil
}

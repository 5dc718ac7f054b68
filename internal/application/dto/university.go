package dto

import (
	"strings"
	"time"

	"apptracker/internal/domain/entity"
)

type UniversityResponse struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Country              string     `json:"country"`
	State                *string    `json:"state"`
	City                 *string    `json:"city"`
	Website              *string    `json:"website"`
	Description          *string    `json:"description"`
	Ranking              *int       `json:"ranking"`
	AcceptanceRate       *float64   `json:"acceptanceRate"`
	TuitionDomestic      *float64   `json:"tuitionDomestic"`
	TuitionInternational *float64   `json:"tuitionInternational"`
	ApplicationDeadline  *time.Time `json:"applicationDeadline"`
}

func ToUniversityResponse(u *entity.University) UniversityResponse {
	return UniversityResponse{
		ID:                   u.ID,
		Name:                 u.Name,
		Country:              u.Country,
		State:                u.State,
		City:                 u.City,
		Website:              u.Website,
		Description:          u.Description,
		Ranking:              u.Ranking,
		AcceptanceRate:       u.AcceptanceRate,
		TuitionDomestic:      u.TuitionDomestic,
		TuitionInternational: u.TuitionInternational,
		ApplicationDeadline:  u.ApplicationDeadline,
	}
}

type ProgramResponse struct {
	ID                string   `json:"id"`
	UniversityID      string   `json:"universityId"`
	Name              string   `json:"name"`
	DegreeType        string   `json:"degreeType"`
	Duration          *int     `json:"duration"`
	TuitionFee        *float64 `json:"tuitionFee"`
	MinGPA            *float64 `json:"minGpa"`
	MinSAT            *int     `json:"minSat"`
	MinACT            *int     `json:"minAct"`
	MinTOEFL          *int     `json:"minToefl"`
	MinIELTS          *float64 `json:"minIelts"`
	RequiredDocuments []string `json:"requiredDocuments"`
	OptionalDocuments []string `json:"optionalDocuments"`
	Description       *string  `json:"description"`
}

func ToProgramResponse(p *entity.Program) ProgramResponse {
	return ProgramResponse{
		ID:                p.ID,
		UniversityID:      p.UniversityID,
		Name:              p.Name,
		DegreeType:        string(p.DegreeType),
		Duration:          p.Duration,
		TuitionFee:        p.TuitionFee,
		MinGPA:            p.MinGPA,
		MinSAT:            p.MinSAT,
		MinACT:            p.MinACT,
		MinTOEFL:          p.MinTOEFL,
		MinIELTS:          p.MinIELTS,
		RequiredDocuments: splitList(p.RequiredDocuments),
		OptionalDocuments: splitList(p.OptionalDocuments),
		Description:       p.Description,
	}
}

// UniversityRequest is used for both create and full update.
type UniversityRequest struct {
	Name                 string     `json:"name" validate:"required,max=255"`
	Country              string     `json:"country" validate:"required,max=100"`
	State                *string    `json:"state" validate:"omitempty,max=100"`
	City                 *string    `json:"city" validate:"omitempty,max=100"`
	Website              *string    `json:"website" validate:"omitempty,url"`
	Description          *string    `json:"description"`
	Ranking              *int       `json:"ranking" validate:"omitempty,min=1"`
	AcceptanceRate       *float64   `json:"acceptanceRate" validate:"omitempty,min=0,max=100"`
	TuitionDomestic      *float64   `json:"tuitionDomestic" validate:"omitempty,min=0"`
	TuitionInternational *float64   `json:"tuitionInternational" validate:"omitempty,min=0"`
	ApplicationDeadline  *time.Time `json:"applicationDeadline"`
}

type ProgramRequest struct {
	Name              string   `json:"name" validate:"required,max=255"`
	DegreeType        string   `json:"degreeType" validate:"required"`
	Duration          *int     `json:"duration" validate:"omitempty,min=1"`
	TuitionFee        *float64 `json:"tuitionFee" validate:"omitempty,min=0"`
	MinGPA            *float64 `json:"minGpa" validate:"omitempty,min=0,max=5"`
	MinSAT            *int     `json:"minSat" validate:"omitempty,min=400,max=1600"`
	MinACT            *int     `json:"minAct" validate:"omitempty,min=1,max=36"`
	MinTOEFL          *int     `json:"minToefl" validate:"omitempty,min=0,max=120"`
	MinIELTS          *float64 `json:"minIelts" validate:"omitempty,min=0,max=9"`
	RequiredDocuments []string `json:"requiredDocuments"`
	OptionalDocuments []string `json:"optionalDocuments"`
	Description       *string  `json:"description"`
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList is the inverse of the document list split.
func JoinList(items []string) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return strings.Join(out, ",")
}

package dto

import (
	"time"

	"apptracker/internal/domain/entity"
)

type ApplicationResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	UniversityID   string     `json:"universityId"`
	UniversityName string     `json:"universityName"`
	ProgramID      *string    `json:"programId"`
	ProgramName    *string    `json:"programName"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	SubmissionDate *time.Time `json:"submissionDate"`
	DecisionDate   *time.Time `json:"decisionDate"`
	Decision       *string    `json:"decision"`
	Notes          *string    `json:"notes"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func ToApplicationResponse(a *entity.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		UniversityID:   a.UniversityID,
		ProgramID:      a.ProgramID,
		Status:         string(a.Status),
		Priority:       string(a.Priority),
		SubmissionDate: a.SubmissionDate,
		DecisionDate:   a.DecisionDate,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.University != nil {
		resp.UniversityName = a.University.Name
	}
	if a.Program != nil {
		name := a.Program.Name
		resp.ProgramName = &name
	}
	if a.Decision != nil {
		decision := string(*a.Decision)
		resp.Decision = &decision
	}
	return resp
}

type CreateApplicationRequest struct {
	UniversityID   string  `json:"universityId"`
	ProgramID      *string `json:"programId"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	SubmissionDate *string `json:"submissionDate"`
	Notes          *string `json:"notes"`
}

// UpdateApplicationRequest is a partial update. Absent and null fields are left unchanged.
type UpdateApplicationRequest struct {
	ProgramID      *string `json:"programId"`
	Status         *string `json:"status"`
	Priority       *string `json:"priority"`
	SubmissionDate *string `json:"submissionDate"`
	DecisionDate   *string `json:"decisionDate"`
	Decision       *string `json:"decision"`
	Notes          *string `json:"notes"`
}

type ApplicationStats struct {
	Total             int `json:"total"`
	InProgress        int `json:"inProgress"`
	Submitted         int `json:"submitted"`
	DecisionsReceived int `json:"decisionsReceived"`
}

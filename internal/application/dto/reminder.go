package dto

import (
	"time"

	"apptracker/internal/domain/entity"
)

// ReminderResponse is the DTO for sending reminder information to the client.
type ReminderResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	IsCompleted bool      `json:"isCompleted"`
	Urgency     string    `json:"urgency"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToReminderResponse converts an entity.Reminder to a ReminderResponse DTO.
// urgency is the bucket name at the time of the request.
func ToReminderResponse(r *entity.Reminder, urgency string) ReminderResponse {
	return ReminderResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    string(r.Priority),
		Category:    string(r.Category),
		IsCompleted: r.IsCompleted,
		Urgency:     urgency,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// CreateReminderRequest is the DTO for creating a new reminder.
// DueDate accepts RFC 3339, "2006-01-02T15:04" or "2006-01-02".
type CreateReminderRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     string  `json:"dueDate"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category"`
}

// UpdateReminderRequest is a partial update. Absent and null fields are left unchanged.
type UpdateReminderRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
	IsCompleted *bool   `json:"isCompleted"`
}

// ReminderStats summarizes a user's reminders.
type ReminderStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Overdue   int `json:"overdue"`
}

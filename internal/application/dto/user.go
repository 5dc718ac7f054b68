package dto

import (
	"time"

	"apptracker/internal/domain/entity"
)

type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Phone      *string   `json:"phone"`
	Address    *string   `json:"address"`
	Avatar     *string   `json:"avatar"`
	Language   string    `json:"language"`
	LineLinked bool      `json:"lineLinked"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		Phone:      u.Phone,
		Address:    u.Address,
		Avatar:     u.Avatar,
		Language:   u.Language,
		LineLinked: u.LineUserID != nil,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,max=72"`
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=50"`
	Language string  `json:"language" validate:"omitempty,oneof=zh en"`
}

type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// UpdateProfileRequest replaces the editable profile fields.
type UpdateProfileRequest struct {
	Name     string  `json:"name"`
	Phone    *string `json:"phone" validate:"omitempty,max=50"`
	Address  *string `json:"address" validate:"omitempty,max=500"`
	Language *string `json:"language"`
}

type LineLinkResponse struct {
	Code string `json:"code"`
}

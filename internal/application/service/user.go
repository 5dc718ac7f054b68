package service

import (
	"context"

	"apptracker/internal/application/dto"
	"apptracker/internal/domain/entity"
)

// UserService defines the interface for profile and LINE account linking logic.
type UserService interface {
	GetProfile(ctx context.Context, actor dto.Actor) (*dto.UserResponse, error)
	// UpdateProfile replaces the editable profile fields. Nil fields are left unchanged.
	UpdateProfile(ctx context.Context, actor dto.Actor, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
	// CreateLineLinkCode issues a one-time code the actor sends to the LINE bot.
	CreateLineLinkCode(ctx context.Context, actor dto.Actor) (string, error)
	// LinkLineAccount attaches lineUserID to the account holding code.
	LinkLineAccount(ctx context.Context, code, lineUserID string) (*entity.User, error)
	// UnlinkLineAccount detaches lineUserID from whichever account holds it.
	UnlinkLineAccount(ctx context.Context, lineUserID string) error
	// FindByLineUserID retrieves the account linked to lineUserID.
	FindByLineUserID(ctx context.Context, lineUserID string) (*entity.User, error)
}

package service

import (
	"context"

	"apptracker/internal/application/dto"
)

// AuthService defines the interface for registration, login and session checks.
type AuthService interface {
	// Register creates a student account and signs it in.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResult, error)
	// Login checks credentials and issues a session token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResult, error)
	// Authenticate resolves a session token to the actor it was issued for.
	Authenticate(ctx context.Context, token string) (dto.Actor, error)
	// Me returns the actor's account.
	Me(ctx context.Context, actor dto.Actor) (*dto.UserResponse, error)
}

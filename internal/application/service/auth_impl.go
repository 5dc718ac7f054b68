package service

import (
	"context"
	"fmt"
	"strings"

	"apptracker/internal/application/dto"
	"apptracker/internal/domain/constant"
	"apptracker/internal/domain/entity"
	"apptracker/internal/domain/repository"
	"apptracker/internal/infrastructure/auth"
	appErrors "apptracker/internal/pkg/errors"
	"apptracker/internal/pkg/i18n"
	"apptracker/internal/pkg/logger"
)

type authService struct {
	userRepo   repository.UserRepository
	tokens     *auth.JWTManager
	translator *i18n.Translator
	bcryptCost int
	log        logger.Logger
}

// NewAuthService creates a new instance of AuthService implementation.
func NewAuthService(
	userRepo repository.UserRepository,
	tokens *auth.JWTManager,
	translator *i18n.Translator,
	bcryptCost int,
	log logger.Logger,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		translator: translator,
		bcryptCost: bcryptCost,
		log:        log,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" {
		return nil, appErrors.Validation("api.general.validationError")
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.Validation("api.auth.weakPassword")
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, appErrors.Conflict("api.auth.emailAlreadyExists")
	} else if !isNotFound(err) {
		s.log.Error(fmt.Sprintf("Failed to look up email %s", email), err)
		return nil, appErrors.Storage("api.general.databaseError", err)
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", err)
		return nil, appErrors.Wrap(appErrors.ErrInternalServer, "api.general.serverError", err)
	}
	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         constant.RoleStudent,
		Phone:        req.Phone,
		Language:     s.translator.Resolve(req.Language),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, appErrors.Conflict("api.auth.emailAlreadyExists")
		}
		s.log.Error(fmt.Sprintf("Failed to create user %s", email), err)
		return nil, appErrors.Storage("api.general.databaseError", err)
	}
	s.log.Info(fmt.Sprintf("Registered user %s", user.ID))
	return s.issue(user, false)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.Unauthorized("api.auth.invalidCredentials")
		}
		s.log.Error(fmt.Sprintf("Failed to look up email %s", email), err)
		return nil, appErrors.Storage("api.general.databaseError", err)
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.log.Warn(fmt.Sprintf("Failed login for user %s", user.ID))
		return nil, appErrors.Unauthorized("api.auth.invalidCredentials")
	}
	return s.issue(user, req.RememberMe)
}

func (s *authService) Authenticate(ctx context.Context, token string) (dto.Actor, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return dto.Actor{}, appErrors.Wrap(appErrors.ErrUnauthorized, "api.auth.invalidToken", err)
	}
	role := constant.Role(claims.Role)
	if claims.UserID == "" || !role.Valid() {
		return dto.Actor{}, appErrors.Unauthorized("api.auth.invalidToken")
	}
	return dto.Actor{UserID: claims.UserID, Role: role}, nil
}

func (s *authService) Me(ctx context.Context, actor dto.Actor) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		if isNotFound(err) {
			// Token outlived its account.
			return nil, appErrors.Unauthorized("api.auth.userNotFound")
		}
		s.log.Error(fmt.Sprintf("Failed to find user %s", actor.UserID), err)
		return nil, appErrors.Storage("api.general.databaseError", err)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *authService) issue(user *entity.User, remember bool) (*dto.AuthResult, error) {
	token, expiresAt, err := s.tokens.Generate(user.ID, user.Email, string(user.Role), remember)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to sign token for user %s", user.ID), err)
		return nil, appErrors.Wrap(appErrors.ErrInternalServer, "api.general.serverError", err)
	}
	return &dto.AuthResult{
		User:      dto.ToUserResponse(user),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

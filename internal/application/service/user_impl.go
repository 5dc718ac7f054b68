package service

import (
	"context"
	"fmt"
	"strings"

	"apptracker/internal/application/dto"
	"apptracker/internal/domain/entity"
	"apptracker/internal/domain/repository"
	appErrors "apptracker/internal/pkg/errors"
	"apptracker/internal/pkg/i18n"
	"apptracker/internal/pkg/logger"

	"github.com/google/uuid"
)

const lineLinkCodeLength = 8

type userService struct {
	userRepo   repository.UserRepository
	translator *i18n.Translator
	log        logger.Logger
}

// NewUserService creates a new instance of UserService implementation.
func NewUserService(userRepo repository.UserRepository, translator *i18n.Translator, log logger.Logger) UserService {
	return &userService{
		userRepo:   userRepo,
		translator: translator,
		log:        log,
	}
}

func (s *userService) GetProfile(ctx context.Context, actor dto.Actor) (*dto.UserResponse, error) {
	user, err := s.find(ctx, actor.UserID, "api.profile.fetchError")
	if err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, actor dto.Actor, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.Validation("settings.profile.nameRequired")
	}
	var lang string
	if req.Language != nil {
		lang = strings.ToLower(strings.TrimSpace(*req.Language))
		if !s.translator.Supported(lang) {
			return nil, appErrors.Validation("api.profile.invalidLanguage")
		}
	}

	user, err := s.find(ctx, actor.UserID, "api.profile.updateError")
	if err != nil {
		return nil, err
	}
	user.Name = name
	if req.Phone != nil {
		user.Phone = optional(*req.Phone)
	}
	if req.Address != nil {
		user.Address = optional(*req.Address)
	}
	if lang != "" {
		user.Language = lang
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update profile of user %s", user.ID), err)
		return nil, appErrors.Storage("api.profile.updateError", err)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *userService) CreateLineLinkCode(ctx context.Context, actor dto.Actor) (string, error) {
	user, err := s.find(ctx, actor.UserID, "api.profile.lineLinkError")
	if err != nil {
		return "", err
	}
	code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:lineLinkCodeLength])
	user.LineLinkCode = &code
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to store LINE link code for user %s", user.ID), err)
		return "", appErrors.Storage("api.profile.lineLinkError", err)
	}
	s.log.Info(fmt.Sprintf("Issued LINE link code for user %s", user.ID))
	return code, nil
}

func (s *userService) LinkLineAccount(ctx context.Context, code, lineUserID string) (*entity.User, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || lineUserID == "" {
		return nil, appErrors.NotFound("line.linkFailed")
	}
	user, err := s.userRepo.FindByLineLinkCode(ctx, code)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFound("line.linkFailed")
		}
		s.log.Error("Failed to look up LINE link code", err)
		return nil, appErrors.Storage("api.general.databaseError", err)
	}

	// A LINE account links to at most one user.
	if previous, err := s.userRepo.FindByLineUserID(ctx, lineUserID); err == nil && previous.ID != user.ID {
		previous.LineUserID = nil
		if err := s.userRepo.Update(ctx, previous); err != nil {
			s.log.Error(fmt.Sprintf("Failed to unlink LINE account from user %s", previous.ID), err)
			return nil, appErrors.Storage("api.general.databaseError", err)
		}
	} else if err != nil && !isNotFound(err) {
		s.log.Error(fmt.Sprintf("Failed to look up LINE user %s", lineUserID), err)
		return nil, appErrors.Storage("api.general.databaseError", err)
	}

	user.LineUserID = &lineUserID
	user.LineLinkCode = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to link LINE account to user %s", user.ID), err)
		return nil, appErrors.Storage("api.general.databaseError", err)
	}
	s.log.Info(fmt.Sprintf("Linked LINE account to user %s", user.ID))
	return user, nil
}

func (s *userService) UnlinkLineAccount(ctx context.Context, lineUserID string) error {
	user, err := s.userRepo.FindByLineUserID(ctx, lineUserID)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		s.log.Error(fmt.Sprintf("Failed to look up LINE user %s", lineUserID), err)
		return appErrors.Storage("api.general.databaseError", err)
	}
	user.LineUserID = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error(fmt.Sprintf("Failed to unlink LINE account from user %s", user.ID), err)
		return appErrors.Storage("api.general.databaseError", err)
	}
	s.log.Info(fmt.Sprintf("Unlinked LINE account from user %s", user.ID))
	return nil
}

func (s *userService) FindByLineUserID(ctx context.Context, lineUserID string) (*entity.User, error) {
	user, err := s.userRepo.FindByLineUserID(ctx, lineUserID)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFound("line.notLinked")
		}
		s.log.Error(fmt.Sprintf("Failed to look up LINE user %s", lineUserID), err)
		return nil, appErrors.Storage("api.general.databaseError", err)
	}
	return user, nil
}

func (s *userService) find(ctx context.Context, id, errKey string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFound("api.auth.userNotFound")
		}
		s.log.Error(fmt.Sprintf("Failed to find user %s", id), err)
		return nil, appErrors.Storage(errKey, err)
	}
	return user, nil
}

// optional maps an empty string to nil.
func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

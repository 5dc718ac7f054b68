package service

import (
	"context"
	"fmt"
	"strings"

	"apptracker/internal/application/dto"
	"apptracker/internal/domain/constant"
	"apptracker/internal/domain/entity"
	"apptracker/internal/domain/repository"
	appErrors "apptracker/internal/pkg/errors"
	"apptracker/internal/pkg/i18n"
	"apptracker/internal/pkg/logger"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	translator       *i18n.Translator
	pusher           MessagePusher
	log              logger.Logger
}

// NewNotificationService creates a new instance of NotificationService implementation.
// pusher may be nil when no LINE channel is configured.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	translator *i18n.Translator,
	pusher MessagePusher,
	log logger.Logger,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		translator:       translator,
		pusher:           pusher,
		log:              log,
	}
}

func (s *notificationService) List(ctx context.Context, actor dto.Actor, query dto.NotificationQuery) ([]dto.NotificationResponse, error) {
	filter := repository.NotificationFilter{UnreadOnly: query.UnreadOnly}
	if query.Limit > 0 {
		filter.Limit = query.Limit
	}
	notifications, err := s.notificationRepo.FindByUserID(ctx, actor.UserID, filter)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list notifications for user %s", actor.UserID), err)
		return nil, appErrors.Storage("api.notifications.fetchError", err)
	}
	return dto.ToNotificationResponseList(notifications), nil
}

func (s *notificationService) UnreadCount(ctx context.Context, actor dto.Actor) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, actor.UserID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to count unread notifications for user %s", actor.UserID), err)
		return 0, appErrors.Storage("api.notifications.unreadCountError", err)
	}
	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, actor dto.Actor, id string) (*dto.NotificationResponse, error) {
	notification, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !notification.IsRead {
		if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
			if isNotFound(err) {
				return nil, appErrors.NotFound("api.notifications.notFound")
			}
			s.log.Error(fmt.Sprintf("Failed to mark notification %s read", id), err)
			return nil, appErrors.Storage("api.notifications.markReadError", err)
		}
		notification.IsRead = true
	}
	resp := dto.ToNotificationResponse(notification)
	return &resp, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, actor dto.Actor) (int64, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, actor.UserID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to mark all notifications read for user %s", actor.UserID), err)
		return 0, appErrors.Storage("api.notifications.markAllReadError", err)
	}
	s.log.Debug(fmt.Sprintf("Marked %d notifications read for user %s", updated, actor.UserID))
	return updated, nil
}

func (s *notificationService) Delete(ctx context.Context, actor dto.Actor, id string) error {
	if _, err := s.load(ctx, actor, id); err != nil {
		return err
	}
	if err := s.notificationRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return appErrors.NotFound("api.notifications.notFound")
		}
		s.log.Error(fmt.Sprintf("Failed to delete notification %s", id), err)
		return appErrors.Storage("api.notifications.deleteError", err)
	}
	return nil
}

func (s *notificationService) Notify(ctx context.Context, req dto.NotifyRequest) (*dto.NotificationResponse, error) {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFound("api.auth.userNotFound")
		}
		s.log.Error(fmt.Sprintf("Failed to find user %s for notification", req.UserID), err)
		return nil, appErrors.Storage("api.general.databaseError", err)
	}

	lang := s.translator.Resolve(user.Language)
	params := make(map[string]string, len(req.Params)+len(req.ParamKeys))
	for k, v := range req.Params {
		params[k] = v
	}
	for k, key := range req.ParamKeys {
		params[k] = s.translator.T(lang, key)
	}

	notification := &entity.Notification{
		UserID:  user.ID,
		Type:    req.Type,
		Title:   s.translator.Format(lang, req.TitleKey, params),
		Message: s.translator.Format(lang, req.MessageKey, params),
	}
	if req.ActionURL != "" {
		actionURL := req.ActionURL
		notification.ActionURL = &actionURL
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create %s notification for user %s", req.Type, user.ID), err)
		return nil, appErrors.Storage("api.general.databaseError", err)
	}

	if user.LineUserID != nil && s.pusher != nil {
		text := notification.Title + "\n" + notification.Message
		if err := s.pusher.PushText(*user.LineUserID, text); err != nil {
			s.log.Warn(fmt.Sprintf("Failed to push notification %s to LINE for user %s: %v", notification.ID, user.ID, err))
		}
	}
	resp := dto.ToNotificationResponse(notification)
	return &resp, nil
}

func (s *notificationService) Broadcast(ctx context.Context, actor dto.Actor, req dto.BroadcastRequest) (int, error) {
	if !actor.IsAdmin() {
		return 0, appErrors.Forbidden("api.auth.forbidden")
	}
	title := strings.TrimSpace(req.Title)
	message := strings.TrimSpace(req.Message)
	if title == "" || message == "" {
		return 0, appErrors.Validation("api.notifications.missingFields")
	}

	var recipients []string
	if req.UserID != "" {
		if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
			if isNotFound(err) {
				return 0, appErrors.NotFound("api.auth.userNotFound")
			}
			return 0, appErrors.Storage("api.notifications.broadcastError", err)
		}
		recipients = []string{req.UserID}
	} else {
		ids, err := s.userRepo.ListIDs(ctx, "")
		if err != nil {
			s.log.Error("Failed to list broadcast recipients", err)
			return 0, appErrors.Storage("api.notifications.broadcastError", err)
		}
		recipients = ids
	}
	if len(recipients) == 0 {
		return 0, nil
	}

	var actionURL *string
	if req.ActionURL != "" {
		actionURL = &req.ActionURL
	}
	notifications := make([]*entity.Notification, len(recipients))
	for i, userID := range recipients {
		notifications[i] = &entity.Notification{
			UserID:    userID,
			Type:      constant.NotificationSystemAlert,
			Title:     title,
			Message:   message,
			ActionURL: actionURL,
		}
	}
	if err := s.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		s.log.Error("Failed to store broadcast notifications", err)
		return 0, appErrors.Storage("api.notifications.broadcastError", err)
	}
	s.log.Info(fmt.Sprintf("Admin %s broadcast a system alert to %d users", actor.UserID, len(recipients)))
	return len(recipients), nil
}

func (s *notificationService) load(ctx context.Context, actor dto.Actor, id string) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFound("api.notifications.notFound")
		}
		s.log.Error(fmt.Sprintf("Failed to find notification %s", id), err)
		return nil, appErrors.Storage("api.notifications.fetchError", err)
	}
	if !actor.CanAccess(notification.UserID) {
		return nil, appErrors.Forbidden("api.auth.forbidden")
	}
	return notification, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"apptracker/internal/application/dto"
	"apptracker/internal/domain/repository"
	appErrors "apptracker/internal/pkg/errors"
	"apptracker/internal/pkg/logger"
)

type dashboardService struct {
	applicationRepo  repository.ApplicationRepository
	reminderRepo     repository.ReminderRepository
	notificationRepo repository.NotificationRepository
	clock            Clock
	log              logger.Logger
}

func NewDashboardService(
	applicationRepo repository.ApplicationRepository,
	reminderRepo repository.ReminderRepository,
	notificationRepo repository.NotificationRepository,
	clock Clock,
	log logger.Logger,
) DashboardService {
	return &dashboardService{
		applicationRepo:  applicationRepo,
		reminderRepo:     reminderRepo,
		notificationRepo: notificationRepo,
		clock:            clock,
		log:              log,
	}
}

func (s *dashboardService) Stats(ctx context.Context, actor dto.Actor) (*dto.DashboardStats, error) {
	now := s.clock.Now()

	applications, err := s.applicationRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to load applications for dashboard of user %s", actor.UserID), err)
		return nil, appErrors.Storage("api.dashboard.fetchError", err)
	}
	reminders, err := s.reminderRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to load reminders for dashboard of user %s", actor.UserID), err)
		return nil, appErrors.Storage("api.dashboard.fetchError", err)
	}
	upcoming, err := s.reminderRepo.FindUpcoming(ctx, actor.UserID, now.Add(DefaultUpcomingDays*24*time.Hour))
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to load upcoming reminders for dashboard of user %s", actor.UserID), err)
		return nil, appErrors.Storage("api.dashboard.fetchError", err)
	}
	unread, err := s.notificationRepo.CountUnread(ctx, actor.UserID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to count notifications for dashboard of user %s", actor.UserID), err)
		return nil, appErrors.Storage("api.dashboard.fetchError", err)
	}

	apps := summarizeApplications(applications)
	return &dto.DashboardStats{
		TotalApplications:      apps.Total,
		ApplicationsInProgress: apps.InProgress,
		ApplicationsSubmitted:  apps.Submitted,
		DecisionsReceived:      apps.DecisionsReceived,
		UpcomingDeadlines:      len(upcoming),
		RecentNotifications:    unread,
		Reminders:              summarizeReminders(now, reminders),
	}, nil
}

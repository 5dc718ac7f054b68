package service

import (
	"context"
	"fmt"
	"time"

	"apptracker/internal/application/dto"
	"apptracker/internal/domain/constant"
	"apptracker/internal/domain/repository"
	"apptracker/internal/infrastructure/scheduler"
	appErrors "apptracker/internal/pkg/errors"
	"apptracker/internal/pkg/logger"
)

const (
	// Upper bound for a single scan run.
	scanTimeout = 2 * time.Minute

	dueDisplayLayout = "2006-01-02 15:04"
)

type schedulerService struct {
	cronScheduler *scheduler.Scheduler
	reminderRepo  repository.ReminderRepository
	notifier      Notifier
	spec          string
	leadTime      time.Duration
	clock         Clock
	log           logger.Logger
}

// NewSchedulerService creates a new instance of SchedulerService implementation.
// spec is a six-field cron expression.
func NewSchedulerService(
	cronScheduler *scheduler.Scheduler,
	reminderRepo repository.ReminderRepository,
	notifier Notifier,
	spec string,
	leadTime time.Duration,
	clock Clock,
	log logger.Logger,
) SchedulerService {
	return &schedulerService{
		cronScheduler: cronScheduler,
		reminderRepo:  reminderRepo,
		notifier:      notifier,
		spec:          spec,
		leadTime:      leadTime,
		clock:         clock,
		log:           log,
	}
}

func (s *schedulerService) Start() error {
	_, err := s.cronScheduler.AddJob(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
		defer cancel()
		if _, err := s.ScanDeadlines(ctx); err != nil {
			s.log.Error("Deadline scan failed", err)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.cronScheduler.Start()
	s.log.Info(fmt.Sprintf("Deadline scan scheduled (%s, lead time %s)", s.spec, s.leadTime))
	return nil
}

func (s *schedulerService) ScanDeadlines(ctx context.Context) (int, error) {
	now := s.clock.Now()
	reminders, err := s.reminderRepo.FindDueForNotification(ctx, now, now.Add(s.leadTime))
	if err != nil {
		s.log.Error("Failed to find reminders due for notification", err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	sent := 0
	for _, r := range reminders {
		_, err := s.notifier.Notify(ctx, dto.NotifyRequest{
			UserID:     r.UserID,
			Type:       constant.NotificationDeadlineReminder,
			TitleKey:   "notifications.deadline.title",
			MessageKey: "notifications.deadline.message",
			Params: map[string]string{
				"title": r.Title,
				"due":   r.DueDate.In(s.clock.Location).Format(dueDisplayLayout),
			},
			ActionURL: "/reminders",
		})
		if err != nil {
			s.log.Error(fmt.Sprintf("Failed to notify user %s about reminder %s", r.UserID, r.ID), err)
			continue
		}
		if err := s.reminderRepo.MarkNotified(ctx, r.ID, now); err != nil {
			s.log.Error(fmt.Sprintf("Failed to mark reminder %s notified", r.ID), err)
			continue
		}
		sent++
	}
	if sent > 0 {
		s.log.Info(fmt.Sprintf("Sent %d deadline notifications", sent))
	}
	return sent, nil
}

func (s *schedulerService) Stop() {
	s.cronScheduler.Stop()
}

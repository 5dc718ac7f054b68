package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"apptracker/internal/application/dto"
	"apptracker/internal/domain/constant"
	"apptracker/internal/domain/entity"
	"apptracker/internal/domain/repository"
	"apptracker/internal/domain/urgency"
	appErrors "apptracker/internal/pkg/errors"
	"apptracker/internal/pkg/logger"
)

type reminderService struct {
	reminderRepo repository.ReminderRepository
	clock        Clock
	log          logger.Logger
}

// NewReminderService creates a new instance of ReminderService implementation.
func NewReminderService(reminderRepo repository.ReminderRepository, clock Clock, log logger.Logger) ReminderService {
	return &reminderService{
		reminderRepo: reminderRepo,
		clock:        clock,
		log:          log,
	}
}

func (s *reminderService) Create(ctx context.Context, actor dto.Actor, req dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.DueDate) == "" {
		return nil, appErrors.Validation("api.reminders.missingFields")
	}
	due, err := s.clock.ParseDate(req.DueDate)
	if err != nil {
		return nil, appErrors.Validation("api.reminders.invalidDueDate")
	}

	priority := constant.PriorityMedium
	if req.Priority != "" {
		priority = constant.Priority(req.Priority)
		if !priority.Valid() {
			return nil, appErrors.Validation("api.reminders.invalidPriority")
		}
	}
	category := constant.CategoryOther
	if req.Category != "" {
		category = constant.Category(req.Category)
		if !category.Valid() {
			return nil, appErrors.Validation("api.reminders.invalidCategory")
		}
	}

	reminder := &entity.Reminder{
		UserID:      actor.UserID,
		Title:       title,
		DueDate:     due,
		Priority:    priority,
		Category:    category,
		IsCompleted: false,
	}
	if req.Description != nil {
		reminder.Description = *req.Description
	}
	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create reminder for user %s", actor.UserID), err)
		return nil, appErrors.Storage("api.reminders.createError", err)
	}
	s.log.Info(fmt.Sprintf("Created reminder %s for user %s", reminder.ID, actor.UserID))
	return s.respond(reminder), nil
}

func (s *reminderService) Get(ctx context.Context, actor dto.Actor, id string) (*dto.ReminderResponse, error) {
	reminder, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return s.respond(reminder), nil
}

func (s *reminderService) List(ctx context.Context, actor dto.Actor) ([]dto.ReminderResponse, error) {
	reminders, err := s.reminderRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list reminders for user %s", actor.UserID), err)
		return nil, appErrors.Storage("api.reminders.fetchError", err)
	}
	now := s.clock.Now()
	urgency.Sort(now, reminders)
	return s.respondList(now, reminders), nil
}

func (s *reminderService) ListUpcoming(ctx context.Context, actor dto.Actor, days int) ([]dto.ReminderResponse, error) {
	if days <= 0 {
		days = DefaultUpcomingDays
	}
	now := s.clock.Now()
	until := now.Add(time.Duration(days) * 24 * time.Hour)
	reminders, err := s.reminderRepo.FindUpcoming(ctx, actor.UserID, until)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list upcoming reminders for user %s", actor.UserID), err)
		return nil, appErrors.Storage("api.reminders.fetchError", err)
	}
	urgency.SortByDueDate(reminders)
	return s.respondList(now, reminders), nil
}

func (s *reminderService) Update(ctx context.Context, actor dto.Actor, id string, req dto.UpdateReminderRequest) (*dto.ReminderResponse, error) {
	reminder, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	var patch entity.ReminderPatch
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, appErrors.Validation("api.reminders.missingFields")
		}
		patch.Title = &title
	}
	patch.Description = req.Description
	if req.DueDate != nil {
		due, err := s.clock.ParseDate(*req.DueDate)
		if err != nil {
			return nil, appErrors.Validation("api.reminders.invalidDueDate")
		}
		patch.DueDate = &due
	}
	if req.Priority != nil {
		priority := constant.Priority(*req.Priority)
		if !priority.Valid() {
			return nil, appErrors.Validation("api.reminders.invalidPriority")
		}
		patch.Priority = &priority
	}
	if req.Category != nil {
		category := constant.Category(*req.Category)
		if !category.Valid() {
			return nil, appErrors.Validation("api.reminders.invalidCategory")
		}
		patch.Category = &category
	}
	if req.IsCompleted != nil {
		switch {
		case *req.IsCompleted:
			patch.Complete = !reminder.IsCompleted
		case reminder.IsCompleted:
			return nil, appErrors.Validation("api.reminders.cannotReopen")
		}
	}

	if patch.Empty() {
		return s.respond(reminder), nil
	}
	if err := s.reminderRepo.Update(ctx, id, patch, s.clock.Now()); err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFound("api.reminders.notFound")
		}
		s.log.Error(fmt.Sprintf("Failed to update reminder %s", id), err)
		return nil, appErrors.Storage("api.reminders.updateError", err)
	}
	return s.reload(ctx, id, "api.reminders.updateError")
}

func (s *reminderService) MarkCompleted(ctx context.Context, actor dto.Actor, id string) (*dto.ReminderResponse, error) {
	reminder, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if reminder.IsCompleted {
		return s.respond(reminder), nil
	}
	if err := s.reminderRepo.MarkCompleted(ctx, id, s.clock.Now()); err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFound("api.reminders.notFound")
		}
		s.log.Error(fmt.Sprintf("Failed to complete reminder %s", id), err)
		return nil, appErrors.Storage("api.reminders.completeError", err)
	}
	s.log.Info(fmt.Sprintf("Reminder %s marked completed", id))
	return s.reload(ctx, id, "api.reminders.completeError")
}

func (s *reminderService) Delete(ctx context.Context, actor dto.Actor, id string) error {
	if _, err := s.load(ctx, actor, id); err != nil {
		return err
	}
	if err := s.reminderRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return appErrors.NotFound("api.reminders.notFound")
		}
		s.log.Error(fmt.Sprintf("Failed to delete reminder %s", id), err)
		return appErrors.Storage("api.reminders.deleteError", err)
	}
	s.log.Info(fmt.Sprintf("Deleted reminder %s", id))
	return nil
}

func (s *reminderService) Stats(ctx context.Context, actor dto.Actor) (*dto.ReminderStats, error) {
	reminders, err := s.reminderRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to load reminder stats for user %s", actor.UserID), err)
		return nil, appErrors.Storage("api.reminders.fetchError", err)
	}
	stats := summarizeReminders(s.clock.Now(), reminders)
	return &stats, nil
}

func summarizeReminders(now time.Time, reminders []*entity.Reminder) dto.ReminderStats {
	stats := dto.ReminderStats{Total: len(reminders)}
	for _, r := range reminders {
		if r.IsCompleted {
			stats.Completed++
			continue
		}
		stats.Pending++
		if urgency.Classify(now, r.DueDate) == urgency.Overdue {
			stats.Overdue++
		}
	}
	return stats
}

// load fetches a reminder and checks that the actor may touch it.
func (s *reminderService) load(ctx context.Context, actor dto.Actor, id string) (*entity.Reminder, error) {
	reminder, err := s.reminderRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFound("api.reminders.notFound")
		}
		s.log.Error(fmt.Sprintf("Failed to find reminder %s", id), err)
		return nil, appErrors.Storage("api.reminders.fetchError", err)
	}
	if !actor.CanAccess(reminder.UserID) {
		s.log.Warn(fmt.Sprintf("User %s denied access to reminder %s", actor.UserID, id))
		return nil, appErrors.Forbidden("api.auth.forbidden")
	}
	return reminder, nil
}

func (s *reminderService) reload(ctx context.Context, id, errKey string) (*dto.ReminderResponse, error) {
	reminder, err := s.reminderRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFound("api.reminders.notFound")
		}
		s.log.Error(fmt.Sprintf("Failed to reload reminder %s", id), err)
		return nil, appErrors.Storage(errKey, err)
	}
	return s.respond(reminder), nil
}

func (s *reminderService) respond(r *entity.Reminder) *dto.ReminderResponse {
	resp := dto.ToReminderResponse(r, urgency.Classify(s.clock.Now(), r.DueDate).String())
	return &resp
}

func (s *reminderService) respondList(now time.Time, reminders []*entity.Reminder) []dto.ReminderResponse {
	list := make([]dto.ReminderResponse, len(reminders))
	for i, r := range reminders {
		list[i] = dto.ToReminderResponse(r, urgency.Classify(now, r.DueDate).String())
	}
	return list
}

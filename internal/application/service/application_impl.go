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
	"apptracker/internal/pkg/logger"
)

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	universityRepo  repository.UniversityRepository
	notifier        Notifier
	clock           Clock
	log             logger.Logger
}

// NewApplicationService creates a new instance of ApplicationService implementation.
func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	universityRepo repository.UniversityRepository,
	notifier Notifier,
	clock Clock,
	log logger.Logger,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		universityRepo:  universityRepo,
		notifier:        notifier,
		clock:           clock,
		log:             log,
	}
}

func (s *applicationService) List(ctx context.Context, actor dto.Actor) ([]dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list applications for user %s", actor.UserID), err)
		return nil, appErrors.Storage("api.applications.fetchError", err)
	}
	list := make([]dto.ApplicationResponse, len(applications))
	for i, a := range applications {
		list[i] = dto.ToApplicationResponse(a)
	}
	return list, nil
}

func (s *applicationService) Get(ctx context.Context, actor dto.Actor, id string) (*dto.ApplicationResponse, error) {
	application, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToApplicationResponse(application)
	return &resp, nil
}

func (s *applicationService) Create(ctx context.Context, actor dto.Actor, req dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	universityID := strings.TrimSpace(req.UniversityID)
	if universityID == "" {
		return nil, appErrors.Validation("api.applications.missingFields")
	}
	if _, err := s.universityRepo.FindByID(ctx, universityID); err != nil {
		if isNotFound(err) {
			return nil, appErrors.Validation("api.applications.universityNotFound")
		}
		s.log.Error(fmt.Sprintf("Failed to find university %s", universityID), err)
		return nil, appErrors.Storage("api.applications.createError", err)
	}

	application := &entity.Application{
		UserID:       actor.UserID,
		UniversityID: universityID,
		Status:       constant.StatusNotStarted,
		Priority:     constant.PriorityMedium,
		Notes:        req.Notes,
	}
	if req.ProgramID != nil && *req.ProgramID != "" {
		if err := s.checkProgram(ctx, universityID, *req.ProgramID); err != nil {
			return nil, err
		}
		application.ProgramID = req.ProgramID
	}
	if req.Status != "" {
		application.Status = constant.ApplicationStatus(req.Status)
		if !application.Status.Valid() {
			return nil, appErrors.Validation("api.applications.invalidStatus")
		}
	}
	if req.Priority != "" {
		application.Priority = constant.Priority(req.Priority)
		if !application.Priority.Valid() {
			return nil, appErrors.Validation("api.applications.invalidPriority")
		}
	}
	if req.SubmissionDate != nil && *req.SubmissionDate != "" {
		submitted, err := s.clock.ParseDate(*req.SubmissionDate)
		if err != nil {
			return nil, appErrors.Validation("api.applications.invalidDate")
		}
		application.SubmissionDate = &submitted
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create application for user %s", actor.UserID), err)
		return nil, appErrors.Storage("api.applications.createError", err)
	}
	s.log.Info(fmt.Sprintf("Created application %s for user %s", application.ID, actor.UserID))
	return s.reload(ctx, application.ID, "api.applications.createError")
}

func (s *applicationService) Update(ctx context.Context, actor dto.Actor, id string, req dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error) {
	current, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	var patch entity.ApplicationPatch
	if req.Status != nil {
		status := constant.ApplicationStatus(*req.Status)
		if !status.Valid() {
			return nil, appErrors.Validation("api.applications.invalidStatus")
		}
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := constant.Priority(*req.Priority)
		if !priority.Valid() {
			return nil, appErrors.Validation("api.applications.invalidPriority")
		}
		patch.Priority = &priority
	}
	if req.Decision != nil {
		decision := constant.Decision(*req.Decision)
		if !decision.Valid() {
			return nil, appErrors.Validation("api.applications.invalidDecision")
		}
		patch.Decision = &decision
	}
	if req.ProgramID != nil && *req.ProgramID != "" {
		if err := s.checkProgram(ctx, current.UniversityID, *req.ProgramID); err != nil {
			return nil, err
		}
		patch.ProgramID = req.ProgramID
	}
	if req.SubmissionDate != nil {
		submitted, err := s.clock.ParseDate(*req.SubmissionDate)
		if err != nil {
			return nil, appErrors.Validation("api.applications.invalidDate")
		}
		patch.SubmissionDate = &submitted
	}
	if req.DecisionDate != nil {
		decided, err := s.clock.ParseDate(*req.DecisionDate)
		if err != nil {
			return nil, appErrors.Validation("api.applications.invalidDate")
		}
		patch.DecisionDate = &decided
	}
	patch.Notes = req.Notes

	if err := s.applicationRepo.Update(ctx, id, patch, s.clock.Now()); err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFound("api.applications.notFound")
		}
		s.log.Error(fmt.Sprintf("Failed to update application %s", id), err)
		return nil, appErrors.Storage("api.applications.updateError", err)
	}
	updated, err := s.reload(ctx, id, "api.applications.updateError")
	if err != nil {
		return nil, err
	}
	s.notifyChanges(ctx, current, patch)
	return updated, nil
}

func (s *applicationService) Delete(ctx context.Context, actor dto.Actor, id string) error {
	if _, err := s.load(ctx, actor, id); err != nil {
		return err
	}
	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return appErrors.NotFound("api.applications.notFound")
		}
		s.log.Error(fmt.Sprintf("Failed to delete application %s", id), err)
		return appErrors.Storage("api.applications.deleteError", err)
	}
	s.log.Info(fmt.Sprintf("Deleted application %s", id))
	return nil
}

func (s *applicationService) Stats(ctx context.Context, actor dto.Actor) (*dto.ApplicationStats, error) {
	applications, err := s.applicationRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to load application stats for user %s", actor.UserID), err)
		return nil, appErrors.Storage("api.applications.fetchError", err)
	}
	stats := summarizeApplications(applications)
	return &stats, nil
}

func summarizeApplications(applications []*entity.Application) dto.ApplicationStats {
	stats := dto.ApplicationStats{Total: len(applications)}
	for _, a := range applications {
		if a.Status.InProgress() {
			stats.InProgress++
		}
		if a.Status.Submitted() {
			stats.Submitted++
		}
		if a.Decision != nil {
			stats.DecisionsReceived++
		}
	}
	return stats
}

// notifyChanges tells the owner about a new status or decision. Failures are
// logged only; the update itself already succeeded.
func (s *applicationService) notifyChanges(ctx context.Context, before *entity.Application, patch entity.ApplicationPatch) {
	universityName := ""
	if before.University != nil {
		universityName = before.University.Name
	}
	actionURL := "/applications/" + before.ID

	if patch.Status != nil && *patch.Status != before.Status {
		_, err := s.notifier.Notify(ctx, dto.NotifyRequest{
			UserID:     before.UserID,
			Type:       constant.NotificationStatusUpdate,
			TitleKey:   "notifications.statusUpdate.title",
			MessageKey: "notifications.statusUpdate.message",
			Params:     map[string]string{"university": universityName},
			ParamKeys:  map[string]string{"status": "applications.status." + string(*patch.Status)},
			ActionURL:  actionURL,
		})
		if err != nil {
			s.log.Warn(fmt.Sprintf("Failed to send status notification for application %s: %v", before.ID, err))
		}
	}
	if patch.Decision != nil && (before.Decision == nil || *before.Decision != *patch.Decision) {
		_, err := s.notifier.Notify(ctx, dto.NotifyRequest{
			UserID:     before.UserID,
			Type:       constant.NotificationDecision,
			TitleKey:   "notifications.decision.title",
			MessageKey: "notifications.decision.message",
			Params:     map[string]string{"university": universityName},
			ParamKeys:  map[string]string{"decision": "applications.decision." + string(*patch.Decision)},
			ActionURL:  actionURL,
		})
		if err != nil {
			s.log.Warn(fmt.Sprintf("Failed to send decision notification for application %s: %v", before.ID, err))
		}
	}
}

func (s *applicationService) checkProgram(ctx context.Context, universityID, programID string) error {
	program, err := s.universityRepo.FindProgramByID(ctx, programID)
	if err != nil {
		if isNotFound(err) {
			return appErrors.Validation("api.applications.programMismatch")
		}
		s.log.Error(fmt.Sprintf("Failed to find program %s", programID), err)
		return appErrors.Storage("api.general.databaseError", err)
	}
	if program.UniversityID != universityID {
		return appErrors.Validation("api.applications.programMismatch")
	}
	return nil
}

func (s *applicationService) load(ctx context.Context, actor dto.Actor, id string) (*entity.Application, error) {
	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFound("api.applications.notFound")
		}
		s.log.Error(fmt.Sprintf("Failed to find application %s", id), err)
		return nil, appErrors.Storage("api.applications.fetchError", err)
	}
	if !actor.CanAccess(application.UserID) {
		return nil, appErrors.Forbidden("api.auth.forbidden")
	}
	return application, nil
}

func (s *applicationService) reload(ctx context.Context, id, errKey string) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFound("api.applications.notFound")
		}
		s.log.Error(fmt.Sprintf("Failed to reload application %s", id), err)
		return nil, appErrors.Storage(errKey, err)
	}
	resp := dto.ToApplicationResponse(application)
	return &resp, nil
}

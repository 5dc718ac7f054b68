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

type universityService struct {
	universityRepo repository.UniversityRepository
	log            logger.Logger
}

// NewUniversityService creates a new instance of UniversityService implementation.
func NewUniversityService(universityRepo repository.UniversityRepository, log logger.Logger) UniversityService {
	return &universityService{
		universityRepo: universityRepo,
		log:            log,
	}
}

func (s *universityService) List(ctx context.Context, search, country string) ([]dto.UniversityResponse, error) {
	universities, err := s.universityRepo.FindAll(ctx, repository.UniversityFilter{
		Search:  strings.TrimSpace(search),
		Country: strings.TrimSpace(country),
	})
	if err != nil {
		s.log.Error("Failed to list universities", err)
		return nil, appErrors.Storage("api.universities.fetchError", err)
	}
	list := make([]dto.UniversityResponse, len(universities))
	for i, u := range universities {
		list[i] = dto.ToUniversityResponse(u)
	}
	return list, nil
}

func (s *universityService) Get(ctx context.Context, id string) (*dto.UniversityResponse, error) {
	university, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToUniversityResponse(university)
	return &resp, nil
}

func (s *universityService) Countries(ctx context.Context) ([]string, error) {
	countries, err := s.universityRepo.Countries(ctx)
	if err != nil {
		s.log.Error("Failed to list countries", err)
		return nil, appErrors.Storage("api.universities.fetchError", err)
	}
	return countries, nil
}

func (s *universityService) Programs(ctx context.Context, universityID string) ([]dto.ProgramResponse, error) {
	if _, err := s.find(ctx, universityID); err != nil {
		return nil, err
	}
	programs, err := s.universityRepo.FindPrograms(ctx, universityID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list programs of university %s", universityID), err)
		return nil, appErrors.Storage("api.universities.fetchProgramsError", err)
	}
	list := make([]dto.ProgramResponse, len(programs))
	for i, p := range programs {
		list[i] = dto.ToProgramResponse(p)
	}
	return list, nil
}

func (s *universityService) Create(ctx context.Context, actor dto.Actor, req dto.UniversityRequest) (*dto.UniversityResponse, error) {
	if !actor.IsAdmin() {
		return nil, appErrors.Forbidden("api.auth.forbidden")
	}
	university := &entity.University{}
	if err := applyUniversity(university, req); err != nil {
		return nil, err
	}
	if err := s.universityRepo.Create(ctx, university); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create university %s", university.Name), err)
		return nil, appErrors.Storage("api.general.databaseError", err)
	}
	s.log.Info(fmt.Sprintf("Admin %s created university %s", actor.UserID, university.ID))
	resp := dto.ToUniversityResponse(university)
	return &resp, nil
}

func (s *universityService) Update(ctx context.Context, actor dto.Actor, id string, req dto.UniversityRequest) (*dto.UniversityResponse, error) {
	if !actor.IsAdmin() {
		return nil, appErrors.Forbidden("api.auth.forbidden")
	}
	university, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyUniversity(university, req); err != nil {
		return nil, err
	}
	if err := s.universityRepo.Update(ctx, university); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update university %s", id), err)
		return nil, appErrors.Storage("api.general.databaseError", err)
	}
	resp := dto.ToUniversityResponse(university)
	return &resp, nil
}

func (s *universityService) Delete(ctx context.Context, actor dto.Actor, id string) error {
	if !actor.IsAdmin() {
		return appErrors.Forbidden("api.auth.forbidden")
	}
	if err := s.universityRepo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return appErrors.NotFound("api.universities.notFound")
		}
		s.log.Error(fmt.Sprintf("Failed to delete university %s", id), err)
		return appErrors.Storage("api.general.databaseError", err)
	}
	s.log.Info(fmt.Sprintf("Admin %s deleted university %s", actor.UserID, id))
	return nil
}

func (s *universityService) CreateProgram(ctx context.Context, actor dto.Actor, universityID string, req dto.ProgramRequest) (*dto.ProgramResponse, error) {
	if !actor.IsAdmin() {
		return nil, appErrors.Forbidden("api.auth.forbidden")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.Validation("api.universities.missingFields")
	}
	degree := constant.DegreeType(req.DegreeType)
	if !degree.Valid() {
		return nil, appErrors.Validation("api.universities.invalidDegree")
	}
	if _, err := s.find(ctx, universityID); err != nil {
		return nil, err
	}

	program := &entity.Program{
		UniversityID:      universityID,
		Name:              name,
		DegreeType:        degree,
		Duration:          req.Duration,
		TuitionFee:        req.TuitionFee,
		MinGPA:            req.MinGPA,
		MinSAT:            req.MinSAT,
		MinACT:            req.MinACT,
		MinTOEFL:          req.MinTOEFL,
		MinIELTS:          req.MinIELTS,
		RequiredDocuments: dto.JoinList(req.RequiredDocuments),
		OptionalDocuments: dto.JoinList(req.OptionalDocuments),
		Description:       req.Description,
	}
	if err := s.universityRepo.CreateProgram(ctx, program); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create program for university %s", universityID), err)
		return nil, appErrors.Storage("api.general.databaseError", err)
	}
	resp := dto.ToProgramResponse(program)
	return &resp, nil
}

func (s *universityService) find(ctx context.Context, id string) (*entity.University, error) {
	university, err := s.universityRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFound("api.universities.notFound")
		}
		s.log.Error(fmt.Sprintf("Failed to find university %s", id), err)
		return nil, appErrors.Storage("api.universities.fetchError", err)
	}
	return university, nil
}

func applyUniversity(u *entity.University, req dto.UniversityRequest) error {
	name := strings.TrimSpace(req.Name)
	country := strings.TrimSpace(req.Country)
	if name == "" || country == "" {
		return appErrors.Validation("api.universities.missingFields")
	}
	u.Name = name
	u.Country = country
	u.State = req.State
	u.City = req.City
	u.Website = req.Website
	u.Description = req.Description
	u.Ranking = req.Ranking
	u.AcceptanceRate = req.AcceptanceRate
	u.TuitionDomestic = req.TuitionDomestic
	u.TuitionInternational = req.TuitionInternational
	u.ApplicationDeadline = req.ApplicationDeadline
	return nil
}

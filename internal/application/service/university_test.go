package service_test

import (
	"testing"

	"apptracker/internal/application/dto"
	"apptracker/internal/application/service"
	appErrors "apptracker/internal/pkg/errors"
	"apptracker/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestUniversityAdminWrites(t *testing.T) {
	f := newFixture(t)
	svc := service.NewUniversityService(f.universities, logger.Discard())

	req := dto.UniversityRequest{Name: "ETH Zurich", Country: "Switzerland", Ranking: intPtr(7)}
	_, err := svc.Create(f.ctx, f.student, req)
	assertAppError(t, err, appErrors.ErrForbidden, "api.auth.forbidden")
	_, err = svc.Create(f.ctx, f.admin, dto.UniversityRequest{Name: "No Country"})
	assertAppError(t, err, appErrors.ErrValidation, "api.universities.missingFields")

	eth, err := svc.Create(f.ctx, f.admin, req)
	require.NoError(t, err)
	require.NotNil(t, eth.Ranking)
	assert.Equal(t, 7, *eth.Ranking)

	req.City = strPtr("Zurich")
	updated, err := svc.Update(f.ctx, f.admin, eth.ID, req)
	require.NoError(t, err)
	require.NotNil(t, updated.City)
	assert.Equal(t, "Zurich", *updated.City)

	_, err = svc.CreateProgram(f.ctx, f.admin, eth.ID, dto.ProgramRequest{Name: "Robotics", DegreeType: "diploma"})
	assertAppError(t, err, appErrors.ErrValidation, "api.universities.invalidDegree")
	program, err := svc.CreateProgram(f.ctx, f.admin, eth.ID, dto.ProgramRequest{
		Name:              "Robotics",
		DegreeType:        "master",
		RequiredDocuments: []string{"transcript", " cv ", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"transcript", "cv"}, program.RequiredDocuments)
	assert.Equal(t, []string{}, program.OptionalDocuments)

	programs, err := svc.Programs(f.ctx, eth.ID)
	require.NoError(t, err)
	require.Len(t, programs, 1)

	found, err := svc.List(f.ctx, "zurich", "")
	require.NoError(t, err)
	require.Len(t, found, 1)
	countries, err := svc.Countries(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Switzerland"}, countries)

	require.NoError(t, svc.Delete(f.ctx, f.admin, eth.ID))
	_, err = svc.Get(f.ctx, eth.ID)
	assertAppError(t, err, appErrors.ErrNotFound, "api.universities.notFound")
	_, err = svc.Programs(f.ctx, eth.ID)
	assertAppError(t, err, appErrors.ErrNotFound, "api.universities.notFound")
	err = svc.Delete(f.ctx, f.admin, eth.ID)
	assertAppError(t, err, appErrors.ErrNotFound, "api.universities.notFound")
}

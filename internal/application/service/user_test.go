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

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	svc := service.NewUserService(f.users, f.translator, logger.Discard())

	_, err := svc.UpdateProfile(f.ctx, f.student, dto.UpdateProfileRequest{Name: " "})
	assertAppError(t, err, appErrors.ErrValidation, "settings.profile.nameRequired")
	_, err = svc.UpdateProfile(f.ctx, f.student, dto.UpdateProfileRequest{Name: "Li", Language: strPtr("fr")})
	assertAppError(t, err, appErrors.ErrValidation, "api.profile.invalidLanguage")

	updated, err := svc.UpdateProfile(f.ctx, f.student, dto.UpdateProfileRequest{
		Name:     "Li Hua",
		Phone:    strPtr("+86 123"),
		Language: strPtr("ZH"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Li Hua", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+86 123", *updated.Phone)
	assert.Equal(t, "zh", updated.Language)

	cleared, err := svc.UpdateProfile(f.ctx, f.student, dto.UpdateProfileRequest{Name: "Li Hua", Phone: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Phone)

	profile, err := svc.GetProfile(f.ctx, f.student)
	require.NoError(t, err)
	assert.Equal(t, "zh", profile.Language)
	assert.False(t, profile.LineLinked)
}

func TestLineLinking(t *testing.T) {
	f := newFixture(t)
	svc := service.NewUserService(f.users, f.translator, logger.Discard())

	code, err := svc.CreateLineLinkCode(f.ctx, f.student)
	require.NoError(t, err)
	assert.Len(t, code, 8)

	user, err := svc.LinkLineAccount(f.ctx, " "+code+" ", "U-line-1")
	require.NoError(t, err)
	assert.Equal(t, f.student.UserID, user.ID)
	assert.Nil(t, user.LineLinkCode)

	_, err = svc.LinkLineAccount(f.ctx, code, "U-line-1")
	assertAppError(t, err, appErrors.ErrNotFound, "line.linkFailed")

	linked, err := svc.FindByLineUserID(f.ctx, "U-line-1")
	require.NoError(t, err)
	assert.Equal(t, f.student.UserID, linked.ID)

	// The same LINE account moves to the other user.
	otherCode, err := svc.CreateLineLinkCode(f.ctx, f.other)
	require.NoError(t, err)
	_, err = svc.LinkLineAccount(f.ctx, otherCode, "U-line-1")
	require.NoError(t, err)
	profile, err := svc.GetProfile(f.ctx, f.student)
	require.NoError(t, err)
	assert.False(t, profile.LineLinked)

	require.NoError(t, svc.UnlinkLineAccount(f.ctx, "U-line-1"))
	require.NoError(t, svc.UnlinkLineAccount(f.ctx, "U-line-1"))
	_, err = svc.FindByLineUserID(f.ctx, "U-line-1")
	assertAppError(t, err, appErrors.ErrNotFound, "line.notLinked")
}

package service_test

import (
	"testing"
	"time"

	"apptracker/internal/application/dto"
	"apptracker/internal/application/service"
	"apptracker/internal/domain/constant"
	"apptracker/internal/infrastructure/auth"
	appErrors "apptracker/internal/pkg/errors"
	"apptracker/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(f *fixture) service.AuthService {
	tokens := auth.NewJWTManager("test-secret", time.Hour, 30*24*time.Hour)
	return service.NewAuthService(f.users, tokens, f.translator, bcrypt.MinCost, logger.Discard())
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)

	registered, err := svc.Register(f.ctx, dto.RegisterRequest{
		Email:    "New.Student@Example.com",
		Password: "Secret123",
		Name:     "New Student",
		Language: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, "new.student@example.com", registered.User.Email)
	assert.Equal(t, string(constant.RoleStudent), registered.User.Role)
	assert.Equal(t, "en", registered.User.Language)
	assert.NotEmpty(t, registered.Token)

	actor, err := svc.Authenticate(f.ctx, registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, actor.UserID)
	assert.Equal(t, constant.RoleStudent, actor.Role)

	loggedIn, err := svc.Login(f.ctx, dto.LoginRequest{Email: "new.student@example.com", Password: "Secret123", RememberMe: true})
	require.NoError(t, err)
	assert.True(t, loggedIn.ExpiresAt.After(registered.ExpiresAt))

	me, err := svc.Me(f.ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, "New Student", me.Name)
}

func TestRegisterRejects(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)

	_, err := svc.Register(f.ctx, dto.RegisterRequest{Email: "a@example.com", Password: "password", Name: "Weak"})
	assertAppError(t, err, appErrors.ErrValidation, "api.auth.weakPassword")

	_, err = svc.Register(f.ctx, dto.RegisterRequest{Email: "STUDENT@example.com", Password: "Secret123", Name: "Dup"})
	assertAppError(t, err, appErrors.ErrConflict, "api.auth.emailAlreadyExists")
}

func TestLoginRejects(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)

	_, err := svc.Register(f.ctx, dto.RegisterRequest{Email: "x@example.com", Password: "Secret123", Name: "X Y"})
	require.NoError(t, err)

	_, err = svc.Login(f.ctx, dto.LoginRequest{Email: "x@example.com", Password: "Wrong1234"})
	assertAppError(t, err, appErrors.ErrUnauthorized, "api.auth.invalidCredentials")
	_, err = svc.Login(f.ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "Secret123"})
	assertAppError(t, err, appErrors.ErrUnauthorized, "api.auth.invalidCredentials")

	_, err = svc.Authenticate(f.ctx, "not-a-token")
	assertAppError(t, err, appErrors.ErrUnauthorized, "api.auth.invalidToken")
}

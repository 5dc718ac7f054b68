package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"apptracker/internal/application/dto"
	"apptracker/internal/application/service"
	"apptracker/internal/domain/constant"
	"apptracker/internal/domain/entity"
	"apptracker/internal/domain/repository"
	"apptracker/internal/infrastructure/database"
	"apptracker/internal/infrastructure/database/databasetest"
	appErrors "apptracker/internal/pkg/errors"
	"apptracker/internal/pkg/i18n"
	"apptracker/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is Wednesday 2025-03-12 09:00 UTC in every service test.
var now = time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)

type pushed struct {
	to, text string
}

type recordingPusher struct {
	mu       sync.Mutex
	messages []pushed
}

func (p *recordingPusher) PushText(to, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, pushed{to: to, text: text})
	return nil
}

func (p *recordingPusher) sent() []pushed {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]pushed(nil), p.messages...)
}

type fixture struct {
	ctx        context.Context
	clock      service.Clock
	translator *i18n.Translator
	pusher     *recordingPusher

	users         repository.UserRepository
	reminders     repository.ReminderRepository
	notifications repository.NotificationRepository
	universities  repository.UniversityRepository
	applications  repository.ApplicationRepository

	student, other, admin dto.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := databasetest.New(t)
	translator, err := i18n.New(i18n.Chinese)
	require.NoError(t, err)

	f := &fixture{
		ctx:           context.Background(),
		clock:         service.FixedClock(now, time.UTC),
		translator:    translator,
		pusher:        &recordingPusher{},
		users:         database.NewUserRepository(db),
		reminders:     database.NewReminderRepository(db),
		notifications: database.NewNotificationRepository(db),
		universities:  database.NewUniversityRepository(db),
		applications:  database.NewApplicationRepository(db),
	}
	f.student = f.createUser(t, "student@example.com", constant.RoleStudent, i18n.English)
	f.other = f.createUser(t, "other@example.com", constant.RoleStudent, i18n.Chinese)
	f.admin = f.createUser(t, "admin@example.com", constant.RoleAdmin, i18n.Chinese)
	return f
}

func (f *fixture) createUser(t *testing.T, email string, role constant.Role, lang string) dto.Actor {
	t.Helper()
	user := &entity.User{
		Email:        email,
		PasswordHash: "unused",
		Name:         "User " + email,
		Role:         role,
		Language:     lang,
	}
	require.NoError(t, f.users.Create(f.ctx, user))
	return dto.Actor{UserID: user.ID, Role: role}
}

func (f *fixture) notificationService() service.NotificationService {
	return service.NewNotificationService(f.notifications, f.users, f.translator, f.pusher, logger.Discard())
}

func (f *fixture) reminderService() service.ReminderService {
	return service.NewReminderService(f.reminders, f.clock, logger.Discard())
}

// assertAppError checks the kind and message key of err.
func assertAppError(t *testing.T, err error, kind error, key string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	assert.Equal(t, key, appErrors.KeyOf(err, ""))
}

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

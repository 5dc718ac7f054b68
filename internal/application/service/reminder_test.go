package service_test

import (
	"testing"
	"time"

	"apptracker/internal/application/dto"
	appErrors "apptracker/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderCreateDefaults(t *testing.T) {
	f := newFixture(t)
	svc := f.reminderService()

	r, err := svc.Create(f.ctx, f.student, dto.CreateReminderRequest{
		Title:   "  TOEFL registration ",
		DueDate: "2025-03-20",
	})
	require.NoError(t, err)
	assert.Equal(t, "TOEFL registration", r.Title)
	assert.Equal(t, "medium", r.Priority)
	assert.Equal(t, "other", r.Category)
	assert.False(t, r.IsCompleted)
	assert.Equal(t, f.student.UserID, r.UserID)
	assert.True(t, r.DueDate.Equal(time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "later", r.Urgency)
}

func TestReminderCreateValidation(t *testing.T) {
	f := newFixture(t)
	svc := f.reminderService()

	tests := []struct {
		name string
		req  dto.CreateReminderRequest
		key  string
	}{
		{"empty title", dto.CreateReminderRequest{Title: "  ", DueDate: "2025-03-20"}, "api.reminders.missingFields"},
		{"missing due date", dto.CreateReminderRequest{Title: "essay"}, "api.reminders.missingFields"},
		{"unparseable due date", dto.CreateReminderRequest{Title: "essay", DueDate: "next friday"}, "api.reminders.invalidDueDate"},
		{"unknown priority", dto.CreateReminderRequest{Title: "essay", DueDate: "2025-03-20", Priority: "urgent"}, "api.reminders.invalidPriority"},
		{"unknown category", dto.CreateReminderRequest{Title: "essay", DueDate: "2025-03-20", Category: "misc"}, "api.reminders.invalidCategory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(f.ctx, f.student, tt.req)
			assertAppError(t, err, appErrors.ErrValidation, tt.key)
		})
	}
}

func TestReminderListOrdering(t *testing.T) {
	f := newFixture(t)
	svc := f.reminderService()

	create := func(title, due, priority string) string {
		r, err := svc.Create(f.ctx, f.student, dto.CreateReminderRequest{Title: title, DueDate: due, Priority: priority})
		require.NoError(t, err)
		return r.ID
	}
	done := create("done", "2025-03-10T08:00:00Z", "high")
	_, err := svc.MarkCompleted(f.ctx, f.student, done)
	require.NoError(t, err)
	r3 := create("R3", "2025-03-14T09:00:00Z", "low")
	r2 := create("R2", "2025-03-14T09:00:00Z", "high")
	r1 := create("R1", "2025-03-11T09:00:00Z", "high")

	list, err := svc.List(f.ctx, f.student)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, []string{r1, r2, r3, done}, []string{list[0].ID, list[1].ID, list[2].ID, list[3].ID})
	assert.Equal(t, "overdue", list[0].Urgency)
	assert.Equal(t, "this_week", list[1].Urgency)

	others, err := svc.List(f.ctx, f.other)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestReminderListUpcoming(t *testing.T) {
	f := newFixture(t)
	svc := f.reminderService()

	for _, due := range []string{"2025-03-15", "2025-03-11", "2025-03-30"} {
		_, err := svc.Create(f.ctx, f.student, dto.CreateReminderRequest{Title: "due " + due, DueDate: due})
		require.NoError(t, err)
	}
	completed, err := svc.Create(f.ctx, f.student, dto.CreateReminderRequest{Title: "done", DueDate: "2025-03-13"})
	require.NoError(t, err)
	_, err = svc.MarkCompleted(f.ctx, f.student, completed.ID)
	require.NoError(t, err)

	// Zero days falls back to a week.
	list, err := svc.ListUpcoming(f.ctx, f.student, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "due 2025-03-11", list[0].Title)
	assert.Equal(t, "due 2025-03-15", list[1].Title)

	list, err = svc.ListUpcoming(f.ctx, f.student, 30)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestReminderPartialUpdate(t *testing.T) {
	f := newFixture(t)
	svc := f.reminderService()

	created, err := svc.Create(f.ctx, f.student, dto.CreateReminderRequest{
		Title:       "essay",
		Description: strPtr("first draft"),
		DueDate:     "2025-03-20T12:00",
		Priority:    "high",
		Category:    "document",
	})
	require.NoError(t, err)

	updated, err := svc.Update(f.ctx, f.student, created.ID, dto.UpdateReminderRequest{Title: strPtr("final essay")})
	require.NoError(t, err)
	assert.Equal(t, "final essay", updated.Title)
	assert.Equal(t, "first draft", updated.Description)
	assert.True(t, updated.DueDate.Equal(created.DueDate))
	assert.Equal(t, "high", updated.Priority)
	assert.Equal(t, "document", updated.Category)

	cleared, err := svc.Update(f.ctx, f.student, created.ID, dto.UpdateReminderRequest{Description: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, cleared.Description)
	assert.Equal(t, "final essay", cleared.Title)

	_, err = svc.Update(f.ctx, f.student, created.ID, dto.UpdateReminderRequest{Title: strPtr("")})
	assertAppError(t, err, appErrors.ErrValidation, "api.reminders.missingFields")
	_, err = svc.Update(f.ctx, f.student, created.ID, dto.UpdateReminderRequest{Priority: strPtr("urgent")})
	assertAppError(t, err, appErrors.ErrValidation, "api.reminders.invalidPriority")

	// A rejected patch changes nothing.
	got, err := svc.Get(f.ctx, f.student, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "high", got.Priority)
}

func TestReminderCompletionIsOneWay(t *testing.T) {
	f := newFixture(t)
	svc := f.reminderService()

	created, err := svc.Create(f.ctx, f.student, dto.CreateReminderRequest{Title: "essay", DueDate: "2025-03-20"})
	require.NoError(t, err)

	first, err := svc.Update(f.ctx, f.student, created.ID, dto.UpdateReminderRequest{IsCompleted: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, first.IsCompleted)

	second, err := svc.MarkCompleted(f.ctx, f.student, created.ID)
	require.NoError(t, err)
	assert.True(t, second.IsCompleted)
	assert.True(t, second.UpdatedAt.Equal(first.UpdatedAt))

	_, err = svc.Update(f.ctx, f.student, created.ID, dto.UpdateReminderRequest{IsCompleted: boolPtr(false)})
	assertAppError(t, err, appErrors.ErrValidation, "api.reminders.cannotReopen")
}

func TestReminderOwnership(t *testing.T) {
	f := newFixture(t)
	svc := f.reminderService()

	created, err := svc.Create(f.ctx, f.student, dto.CreateReminderRequest{Title: "essay", DueDate: "2025-03-20"})
	require.NoError(t, err)

	_, err = svc.Get(f.ctx, f.other, created.ID)
	assertAppError(t, err, appErrors.ErrForbidden, "api.auth.forbidden")
	_, err = svc.Update(f.ctx, f.other, created.ID, dto.UpdateReminderRequest{Title: strPtr("mine")})
	assertAppError(t, err, appErrors.ErrForbidden, "api.auth.forbidden")
	_, err = svc.MarkCompleted(f.ctx, f.other, created.ID)
	assertAppError(t, err, appErrors.ErrForbidden, "api.auth.forbidden")
	err = svc.Delete(f.ctx, f.other, created.ID)
	assertAppError(t, err, appErrors.ErrForbidden, "api.auth.forbidden")

	got, err := svc.Get(f.ctx, f.admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "essay", got.Title)

	require.NoError(t, svc.Delete(f.ctx, f.admin, created.ID))
	_, err = svc.Get(f.ctx, f.student, created.ID)
	assertAppError(t, err, appErrors.ErrNotFound, "api.reminders.notFound")
	err = svc.Delete(f.ctx, f.student, created.ID)
	assertAppError(t, err, appErrors.ErrNotFound, "api.reminders.notFound")
}

func TestReminderStats(t *testing.T) {
	f := newFixture(t)
	svc := f.reminderService()

	for _, due := range []string{"2025-03-01", "2025-03-11", "2025-03-12T08:00:00Z", "2025-04-01"} {
		_, err := svc.Create(f.ctx, f.student, dto.CreateReminderRequest{Title: due, DueDate: due})
		require.NoError(t, err)
	}
	done, err := svc.Create(f.ctx, f.student, dto.CreateReminderRequest{Title: "done", DueDate: "2025-02-01"})
	require.NoError(t, err)
	_, err = svc.MarkCompleted(f.ctx, f.student, done.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(f.ctx, f.student)
	require.NoError(t, err)
	assert.Equal(t, dto.ReminderStats{Total: 5, Completed: 1, Pending: 4, Overdue: 2}, *stats)
}

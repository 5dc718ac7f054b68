package database_test

import (
	"context"
	"testing"
	"time"

	"apptracker/internal/domain/constant"
	"apptracker/internal/domain/entity"
	"apptracker/internal/domain/repository"
	"apptracker/internal/infrastructure/database"
	"apptracker/internal/infrastructure/database/databasetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedNotifications(t *testing.T, repo repository.NotificationRepository, userID string, n int) []*entity.Notification {
	t.Helper()
	out := make([]*entity.Notification, n)
	for i := 0; i < n; i++ {
		out[i] = &entity.Notification{
			UserID:    userID,
			Type:      constant.NotificationSystemAlert,
			Title:     "title",
			Message:   "message",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), out[i]))
	}
	return out
}

func unreadIn(list []*entity.Notification) int64 {
	var n int64
	for _, item := range list {
		if !item.IsRead {
			n++
		}
	}
	return n
}

func TestNotificationListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := database.NewNotificationRepository(databasetest.New(t))

	created := seedNotifications(t, repo, "u1", 3)
	seedNotifications(t, repo, "u2", 1)

	got, err := repo.FindByUserID(ctx, "u1", repository.NotificationFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, created[2].ID, got[0].ID)
	assert.Equal(t, created[0].ID, got[2].ID)

	limited, err := repo.FindByUserID(ctx, "u1", repository.NotificationFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestNotificationUnreadCountMatchesList(t *testing.T) {
	ctx := context.Background()
	repo := database.NewNotificationRepository(databasetest.New(t))
	created := seedNotifications(t, repo, "u1", 4)

	check := func() {
		list, err := repo.FindByUserID(ctx, "u1", repository.NotificationFilter{})
		require.NoError(t, err)
		count, err := repo.CountUnread(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, unreadIn(list), count)

		unread, err := repo.FindByUserID(ctx, "u1", repository.NotificationFilter{UnreadOnly: true})
		require.NoError(t, err)
		assert.Equal(t, count, int64(len(unread)))
	}

	check()
	require.NoError(t, repo.MarkRead(ctx, created[1].ID))
	check()
	require.NoError(t, repo.MarkRead(ctx, created[1].ID))
	check()
	seedNotifications(t, repo, "u1", 2)
	check()

	updated, err := repo.MarkAllRead(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated)
	check()

	count, err := repo.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNotificationMarkAllReadOnlyTouchesOwner(t *testing.T) {
	ctx := context.Background()
	repo := database.NewNotificationRepository(databasetest.New(t))
	seedNotifications(t, repo, "u1", 3)
	seedNotifications(t, repo, "u2", 2)

	_, err := repo.MarkAllRead(ctx, "u1")
	require.NoError(t, err)

	list, err := repo.FindByUserID(ctx, "u1", repository.NotificationFilter{})
	require.NoError(t, err)
	for _, n := range list {
		assert.True(t, n.IsRead)
	}

	other, err := repo.CountUnread(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), other)
}

func TestNotificationMissingIDs(t *testing.T) {
	ctx := context.Background()
	repo := database.NewNotificationRepository(databasetest.New(t))

	_, err := repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.MarkRead(ctx, "missing"), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), gorm.ErrRecordNotFound)
}

func TestNotificationCreateBatch(t *testing.T) {
	ctx := context.Background()
	repo := database.NewNotificationRepository(databasetest.New(t))

	batch := []*entity.Notification{
		{UserID: "u1", Type: constant.NotificationSystemAlert, Title: "t", Message: "m"},
		{UserID: "u2", Type: constant.NotificationSystemAlert, Title: "t", Message: "m"},
	}
	require.NoError(t, repo.CreateBatch(ctx, batch))
	require.NoError(t, repo.CreateBatch(ctx, nil))

	for _, userID := range []string{"u1", "u2"} {
		count, err := repo.CountUnread(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	}
}

package database

import (
	"context"
	"errors"
	"fmt"

	"apptracker/internal/domain/entity"
	"apptracker/internal/domain/repository"

	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new instance of NotificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// Create creates a new notification.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification for user %s: %w", notification.UserID, err)
	}
	return nil
}

// CreateBatch creates several notifications in one transaction.
func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(notifications, 100).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create %d notifications: %w", len(notifications), err)
	}
	return nil
}

// FindByID retrieves a notification by its ID.
func (r *notificationRepository) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	var notification entity.Notification
	if err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification with ID %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find notification by id %s: %w", id, err)
	}
	return &notification, nil
}

// FindByUserID retrieves a user's notifications, newest first.
func (r *notificationRepository) FindByUserID(ctx context.Context, userID string, filter repository.NotificationFilter) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.UnreadOnly {
		q = q.Where("is_read = ?", false)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Order("created_at desc").Order("id desc").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to find notifications by user_id %s: %w", userID, err)
	}
	return notifications, nil
}

// CountUnread counts a user's unread notifications.
func (r *notificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications for user %s: %w", userID, err)
	}
	return count, nil
}

// MarkRead marks one notification read. Marking a read notification again is a no-op.
func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&entity.Notification{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification with ID %s not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// MarkAllRead marks every unread notification of a user read in one transaction
// and returns how many changed.
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	var updated int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Notification{}).
			Where("user_id = ? AND is_read = ?", userID, false).
			Update("is_read", true)
		updated = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read for user %s: %w", userID, err)
	}
	return updated, nil
}

// Delete deletes a notification by its ID.
func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Notification{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification with ID %s not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"apptracker/internal/domain/constant"
	"apptracker/internal/domain/entity"
	"apptracker/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) findOne(ctx context.Context, what string, query string, arg interface{}) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with %s %v not found: %w", what, arg, err)
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", what, err)
	}
	return &user, nil
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, "id", "id = ?", id)
}

// FindByEmail retrieves a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "email", "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

// FindByLineUserID retrieves the user linked to a LINE account.
func (r *userRepository) FindByLineUserID(ctx context.Context, lineUserID string) (*entity.User, error) {
	return r.findOne(ctx, "LINE user id", "line_user_id = ?", lineUserID)
}

// FindByLineLinkCode retrieves the user holding a pending link code.
func (r *userRepository) FindByLineLinkCode(ctx context.Context, code string) (*entity.User, error) {
	return r.findOne(ctx, "LINE link code", "line_link_code = ?", strings.ToUpper(strings.TrimSpace(code)))
}

// ListIDs returns user IDs, restricted to role when it is set.
func (r *userRepository) ListIDs(ctx context.Context, role constant.Role) ([]string, error) {
	var ids []string
	q := r.db.WithContext(ctx).Model(&entity.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Order("created_at asc").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list user ids: %w", err)
	}
	return ids, nil
}

// Count returns the number of users.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// Create creates a new user. Emails are stored lower case.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.Email, err)
	}
	return nil
}

// Update saves every field of an existing user.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	return nil
}

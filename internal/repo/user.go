package repo

import (
	"context"
	"fmt"

	"github.com/kmalyshev/online_store/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *GormRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	return &u, nil
}

func (r *GormRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, fmt.Errorf("user %q: %w", username, err)
	}
	return &u, nil
}

func (r *GormRepo) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).Model(&models.User{}).
		Order("id ASC").Offset(skip).Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *GormRepo) UpdateUser(ctx context.Context, id uint, fields map[string]any) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	if err := r.DB.WithContext(ctx).Model(&u).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return &u, nil
}

func (r *GormRepo) DeleteUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	if err := r.DB.WithContext(ctx).Delete(&u).Error; err != nil {
		return nil, fmt.Errorf("delete user %d: %w", id, err)
	}
	return &u, nil
}

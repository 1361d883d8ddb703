// Package repository provides GORM-backed user storage.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/yatube/core/user/structs"
	"gorm.io/gorm"
)

// UserRepository defines user persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *structs.User) (*structs.User, error)
	GetByID(ctx context.Context, id uint) (*structs.User, error)
	GetByUsername(ctx context.Context, username string) (*structs.User, error)
	Delete(ctx context.Context, username string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *structs.User) (*structs.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, structs.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*structs.User, error) {
	var user structs.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*structs.User, error) {
	var user structs.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// Delete removes the account; the database cascades to its posts
func (r *userRepository) Delete(ctx context.Context, username string) error {
	res := r.db.WithContext(ctx).Where("username = ?", username).Delete(&structs.User{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return structs.ErrUserNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return structs.ErrUserNotFound
	}
	return fmt.Errorf("failed to query user: %w", err)
}

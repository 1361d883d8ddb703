// Package repository provides GORM-backed group storage.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/yatube/core/group/structs"
	"gorm.io/gorm"
)

// GroupRepository defines group persistence operations
type GroupRepository interface {
	Create(ctx context.Context, group *structs.Group) (*structs.Group, error)
	GetByID(ctx context.Context, id uint) (*structs.Group, error)
	GetBySlug(ctx context.Context, slug string) (*structs.Group, error)
	List(ctx context.Context) ([]*structs.Group, error)
	Delete(ctx context.Context, slug string) error
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *structs.Group) (*structs.Group, error) {
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, structs.ErrGroupExists
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

func (r *groupRepository) GetByID(ctx context.Context, id uint) (*structs.Group, error) {
	var group structs.Group
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &group, nil
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*structs.Group, error) {
	var group structs.Group
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&group).Error; err != nil {
		return nil, notFound(err)
	}
	return &group, nil
}

func (r *groupRepository) List(ctx context.Context) ([]*structs.Group, error) {
	var groups []*structs.Group
	if err := r.db.WithContext(ctx).Order("title ASC").Order("id ASC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// Delete removes the group; the database sets group_id of its posts to NULL
func (r *groupRepository) Delete(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&structs.Group{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete group: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return structs.ErrGroupNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return structs.ErrGroupNotFound
	}
	return fmt.Errorf("failed to query group: %w", err)
}

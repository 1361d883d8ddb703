// Package repository provides GORM-backed post storage.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/yatube/core/post/structs"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter narrows post listings; zero fields match everything
type Filter struct {
	AuthorID uint
	GroupID  uint
}

// PostRepository defines post persistence operations
type PostRepository interface {
	Create(ctx context.Context, post *structs.Post) (*structs.Post, error)
	GetByAuthor(ctx context.Context, authorID, id uint) (*structs.Post, error)
	Update(ctx context.Context, post *structs.Post) (*structs.Post, error)
	List(ctx context.Context, filter Filter, offset, limit int) ([]*structs.Post, error)
	Count(ctx context.Context, filter Filter) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *structs.Post) (*structs.Post, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return r.GetByAuthor(ctx, post.AuthorID, post.ID)
}

func (r *postRepository) GetByAuthor(ctx context.Context, authorID, id uint) (*structs.Post, error) {
	var post structs.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		Where("id = ? AND author_id = ?", id, authorID).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, structs.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to query post: %w", err)
	}
	return &post, nil
}

// Update writes the text and group of the post; author and pub_date are never written
func (r *postRepository) Update(ctx context.Context, post *structs.Post) (*structs.Post, error) {
	err := r.db.WithContext(ctx).
		Model(&structs.Post{}).
		Where("id = ? AND author_id = ?", post.ID, post.AuthorID).
		Select("text", "group_id").
		Updates(map[string]any{"text": post.Text, "group_id": post.GroupID}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	// MySQL reports unchanged rows as unaffected, so existence is checked by the reload
	return r.GetByAuthor(ctx, post.AuthorID, post.ID)
}

func (r *postRepository) List(ctx context.Context, filter Filter, offset, limit int) ([]*structs.Post, error) {
	var posts []*structs.Post
	err := r.scope(ctx, filter).
		Preload("Author").
		Preload("Group").
		Order("pub_date DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) Count(ctx context.Context, filter Filter) (int64, error) {
	var count int64
	if err := r.scope(ctx, filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

func (r *postRepository) scope(ctx context.Context, filter Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&structs.Post{})
	if filter.AuthorID != 0 {
		q = q.Where("author_id = ?", filter.AuthorID)
	}
	if filter.GroupID != 0 {
		q = q.Where("group_id = ?", filter.GroupID)
	}
	return q
}

// Package service contains group business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ncobase/yatube/core/group/data/repository"
	"github.com/ncobase/yatube/core/group/structs"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/ncobase/yatube/util"
	"github.com/ncobase/yatube/validator"
)

// GroupService manages groups
type GroupService struct {
	repo   repository.GroupRepository
	logger *logger.Logger
}

// NewGroupService creates a new group service
func NewGroupService(repo repository.GroupRepository, logger *logger.Logger) *GroupService {
	return &GroupService{repo: repo, logger: logger}
}

// Create stores a new group, deriving the slug from the title when empty
func (s *GroupService) Create(ctx context.Context, body *structs.CreateGroupBody) (*structs.Group, error) {
	body.Title = strings.TrimSpace(body.Title)
	body.Slug = strings.TrimSpace(body.Slug)
	if body.Slug == "" {
		body.Slug = util.Slug(body.Title)
	}

	if errs := validator.ValidateStruct(body); len(errs) > 0 {
		return nil, errs
	}

	group, err := s.repo.Create(ctx, &structs.Group{
		Title:       body.Title,
		Slug:        body.Slug,
		Description: body.Description,
	})
	if err != nil {
		if !errors.Is(err, structs.ErrGroupExists) {
			s.logger.Error(ctx, "failed to create group", "slug", body.Slug, "error", err)
		}
		return nil, err
	}

	s.logger.Info(ctx, "group created", "group_id", group.ID, "slug", group.Slug)
	return group, nil
}

// GetByID returns the group with the given id
func (s *GroupService) GetByID(ctx context.Context, id uint) (*structs.Group, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug returns the group with the given slug
func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*structs.Group, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// List returns all groups ordered by title
func (s *GroupService) List(ctx context.Context) ([]*structs.Group, error) {
	return s.repo.List(ctx)
}

// Delete removes the group; its posts are kept without a group
func (s *GroupService) Delete(ctx context.Context, slug string) error {
	if err := s.repo.Delete(ctx, slug); err != nil {
		return fmt.Errorf("delete group %q: %w", slug, err)
	}
	s.logger.Info(ctx, "group deleted", "slug", slug)
	return nil
}

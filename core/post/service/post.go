// Package service contains post business logic.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	groupStructs "github.com/ncobase/yatube/core/group/structs"
	"github.com/ncobase/yatube/core/post/data/repository"
	"github.com/ncobase/yatube/core/post/structs"
	userStructs "github.com/ncobase/yatube/core/user/structs"
	"github.com/ncobase/yatube/ecode"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/ncobase/yatube/paging"
	"github.com/ncobase/yatube/util"
	"github.com/ncobase/yatube/validator"
)

// GroupProvider is the part of the group service posts depend on
type GroupProvider interface {
	GetByID(ctx context.Context, id uint) (*groupStructs.Group, error)
	List(ctx context.Context) ([]*groupStructs.Group, error)
}

// UserProvider is the part of the user service posts depend on
type UserProvider interface {
	GetByUsername(ctx context.Context, username string) (*userStructs.User, error)
}

// PostService manages posts
type PostService struct {
	repo    repository.PostRepository
	users   UserProvider
	groups  GroupProvider
	perPage int
	logger  *logger.Logger
	now     func() time.Time
}

// NewPostService creates a new post service listing perPage posts per page
func NewPostService(repo repository.PostRepository, users UserProvider, groups GroupProvider, perPage int, logger *logger.Logger) *PostService {
	return &PostService{
		repo:    repo,
		users:   users,
		groups:  groups,
		perPage: paging.NormalizePerPage(perPage),
		logger:  logger,
		now:     time.Now,
	}
}

// Create publishes a new post by the author. Rejected forms return
// validator.FieldErrors.
func (s *PostService) Create(ctx context.Context, authorID uint, form *structs.PostForm) (*structs.Post, error) {
	groupID, err := s.clean(ctx, form)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.Create(ctx, &structs.Post{
		Text:     form.Text,
		PubDate:  s.now(),
		AuthorID: authorID,
		GroupID:  groupID,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to create post", "author_id", authorID, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "post created", "post_id", post.ID, "author_id", authorID)
	return post, nil
}

// GetByAuthor returns the post with the given id among the posts of username
func (s *PostService) GetByAuthor(ctx context.Context, username string, id uint) (*structs.Post, error) {
	author, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, userStructs.ErrUserNotFound) {
		return nil, structs.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.repo.GetByAuthor(ctx, author.ID, id)
}

// Editable returns the post if userID may edit it, ErrNotAuthor otherwise
func (s *PostService) Editable(ctx context.Context, userID uint, username string, id uint) (*structs.Post, error) {
	post, err := s.GetByAuthor(ctx, username, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return post, structs.ErrNotAuthor
	}
	return post, nil
}

// Update replaces the text and group of a post owned by userID. The author
// and publication date never change.
func (s *PostService) Update(ctx context.Context, userID uint, username string, id uint, form *structs.PostForm) (*structs.Post, error) {
	post, err := s.Editable(ctx, userID, username, id)
	if err != nil {
		if errors.Is(err, structs.ErrNotAuthor) {
			s.logger.Warn(ctx, "edit rejected for non-author", "post_id", id, "user_id", userID)
		}
		return post, err
	}

	groupID, err := s.clean(ctx, form)
	if err != nil {
		return post, err
	}

	post.Text = form.Text
	post.GroupID = groupID
	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		s.logger.Error(ctx, "failed to update post", "post_id", id, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "post updated", "post_id", id, "author_id", userID)
	return updated, nil
}

// clean normalizes the form and resolves the selected group
func (s *PostService) clean(ctx context.Context, form *structs.PostForm) (*uint, error) {
	form.Text = strings.TrimSpace(form.Text)
	form.Group = strings.TrimSpace(form.Group)

	errs := validator.ValidateStruct(form)
	if form.Group == "" {
		if len(errs) > 0 {
			return nil, errs
		}
		return nil, nil
	}

	id, ok := util.ParseID(form.Group)
	if ok {
		if _, err := s.groups.GetByID(ctx, id); err != nil {
			if !errors.Is(err, groupStructs.ErrGroupNotFound) {
				return nil, err
			}
			ok = false
		}
	}
	if !ok {
		errs["group"] = ecode.InvalidChoice()
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &id, nil
}

// List returns a page of all posts, newest first
func (s *PostService) List(ctx context.Context, page string) (*paging.Page[*structs.Post], error) {
	return s.paginate(ctx, repository.Filter{}, page)
}

// ListByGroup returns a page of the posts in a group, newest first
func (s *PostService) ListByGroup(ctx context.Context, groupID uint, page string) (*paging.Page[*structs.Post], error) {
	return s.paginate(ctx, repository.Filter{GroupID: groupID}, page)
}

// ListByAuthor returns a page of the posts of an author, newest first
func (s *PostService) ListByAuthor(ctx context.Context, authorID uint, page string) (*paging.Page[*structs.Post], error) {
	return s.paginate(ctx, repository.Filter{AuthorID: authorID}, page)
}

// CountByAuthor returns how many posts the author published
func (s *PostService) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.repo.Count(ctx, repository.Filter{AuthorID: authorID})
}

// Groups returns the choices of the group field
func (s *PostService) Groups(ctx context.Context) ([]*groupStructs.Group, error) {
	return s.groups.List(ctx)
}

func (s *PostService) paginate(ctx context.Context, filter repository.Filter, page string) (*paging.Page[*structs.Post], error) {
	return paging.Paginate(paging.Params{Page: page, PerPage: s.perPage},
		func() (int64, error) { return s.repo.Count(ctx, filter) },
		func(offset, limit int) ([]*structs.Post, error) {
			return s.repo.List(ctx, filter, offset, limit)
		},
	)
}

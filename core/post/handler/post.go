// Package handler exposes the post pages.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	groupStructs "github.com/ncobase/yatube/core/group/structs"
	"github.com/ncobase/yatube/core/post/structs"
	userStructs "github.com/ncobase/yatube/core/user/structs"
	"github.com/ncobase/yatube/ctxutil"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/ncobase/yatube/paging"
	"github.com/ncobase/yatube/util"
	"github.com/ncobase/yatube/validator"
	"github.com/ncobase/yatube/web"
)

// PostService is the part of the post service the pages use
type PostService interface {
	Create(ctx context.Context, authorID uint, form *structs.PostForm) (*structs.Post, error)
	GetByAuthor(ctx context.Context, username string, id uint) (*structs.Post, error)
	Editable(ctx context.Context, userID uint, username string, id uint) (*structs.Post, error)
	Update(ctx context.Context, userID uint, username string, id uint, form *structs.PostForm) (*structs.Post, error)
	List(ctx context.Context, page string) (*paging.Page[*structs.Post], error)
	ListByAuthor(ctx context.Context, authorID uint, page string) (*paging.Page[*structs.Post], error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
	Groups(ctx context.Context) ([]*groupStructs.Group, error)
}

// UserProvider looks up the owner of a profile
type UserProvider interface {
	GetByUsername(ctx context.Context, username string) (*userStructs.User, error)
}

// PostHandler handles the post pages.
type PostHandler struct {
	postService PostService
	users       UserProvider
	logger      *logger.Logger
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService PostService, users UserProvider, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		users:       users,
		logger:      logger,
	}
}

// Index lists every post, newest first.
func (h *PostHandler) Index(c *gin.Context) {
	page, err := h.postService.List(c.Request.Context(), c.Query("page"))
	if err != nil {
		h.fail(c, "failed to list posts", err)
		return
	}
	web.HTML(c, http.StatusOK, "posts/index.html", gin.H{"page": page})
}

// Profile lists the posts of one user.
func (h *PostHandler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	author, err := h.users.GetByUsername(ctx, c.Param("username"))
	if errors.Is(err, userStructs.ErrUserNotFound) {
		web.NotFound(c)
		return
	}
	if err != nil {
		h.fail(c, "failed to load profile", err)
		return
	}

	page, err := h.postService.ListByAuthor(ctx, author.ID, c.Query("page"))
	if err != nil {
		h.fail(c, "failed to list profile posts", err)
		return
	}

	web.HTML(c, http.StatusOK, "posts/profile.html", gin.H{
		"author":     author,
		"page":       page,
		"post_count": page.Total,
	})
}

// Detail shows a single post of a user.
func (h *PostHandler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		web.NotFound(c)
		return
	}

	post, err := h.postService.GetByAuthor(ctx, c.Param("username"), id)
	if errors.Is(err, structs.ErrPostNotFound) {
		web.NotFound(c)
		return
	}
	if err != nil {
		h.fail(c, "failed to load post", err)
		return
	}

	count, err := h.postService.CountByAuthor(ctx, post.AuthorID)
	if err != nil {
		h.fail(c, "failed to count posts", err)
		return
	}

	web.HTML(c, http.StatusOK, "posts/post.html", gin.H{
		"post":       post,
		"author":     post.Author,
		"post_count": count,
		"can_edit":   ctxutil.GetUserID(ctx) == post.AuthorID,
	})
}

// NewPostPage renders the empty post form.
func (h *PostHandler) NewPostPage(c *gin.Context) {
	h.renderForm(c, false, &structs.PostForm{}, nil)
}

// NewPost publishes a post by the current user.
func (h *PostHandler) NewPost(c *gin.Context) {
	ctx := c.Request.Context()

	form := &structs.PostForm{}
	if err := c.ShouldBind(form); err != nil {
		h.renderForm(c, false, form, validator.FieldErrors{validator.NonFieldKey: err.Error()})
		return
	}

	_, err := h.postService.Create(ctx, ctxutil.GetUserID(ctx), form)
	var fieldErrs validator.FieldErrors
	if errors.As(err, &fieldErrs) {
		h.renderForm(c, false, form, fieldErrs)
		return
	}
	if err != nil {
		h.fail(c, "failed to create post", err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// EditPage renders the form pre-filled with the post. Other users are sent
// back to the post.
func (h *PostHandler) EditPage(c *gin.Context) {
	post, ok := h.editable(c)
	if !ok {
		return
	}
	h.renderForm(c, true, structs.FormFromPost(post), nil)
}

// Edit applies the form to the post of the current user.
func (h *PostHandler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		web.NotFound(c)
		return
	}
	username := c.Param("username")

	form := &structs.PostForm{}
	if err := c.ShouldBind(form); err != nil {
		h.renderForm(c, true, form, validator.FieldErrors{validator.NonFieldKey: err.Error()})
		return
	}

	_, err := h.postService.Update(ctx, ctxutil.GetUserID(ctx), username, id, form)
	var fieldErrs validator.FieldErrors
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, detailURL(username, id))
	case errors.Is(err, structs.ErrNotAuthor):
		c.Redirect(http.StatusFound, detailURL(username, id))
	case errors.Is(err, structs.ErrPostNotFound):
		web.NotFound(c)
	case errors.As(err, &fieldErrs):
		h.renderForm(c, true, form, fieldErrs)
	default:
		h.fail(c, "failed to update post", err)
	}
}

// editable loads the post from the URL, answering the request itself when
// the current user may not edit it
func (h *PostHandler) editable(c *gin.Context) (*structs.Post, bool) {
	ctx := c.Request.Context()

	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		web.NotFound(c)
		return nil, false
	}
	username := c.Param("username")

	post, err := h.postService.Editable(ctx, ctxutil.GetUserID(ctx), username, id)
	switch {
	case err == nil:
		return post, true
	case errors.Is(err, structs.ErrNotAuthor):
		c.Redirect(http.StatusFound, detailURL(username, id))
	case errors.Is(err, structs.ErrPostNotFound):
		web.NotFound(c)
	default:
		h.fail(c, "failed to load post", err)
	}
	return nil, false
}

func (h *PostHandler) renderForm(c *gin.Context, isEdit bool, form *structs.PostForm, errs validator.FieldErrors) {
	groups, err := h.postService.Groups(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to list groups", err)
		return
	}
	if errs == nil {
		errs = validator.FieldErrors{}
	}
	web.HTML(c, http.StatusOK, "posts/new_post.html", gin.H{
		"is_edit": isEdit,
		"form":    form,
		"groups":  groups,
		"errors":  errs,
	})
}

func (h *PostHandler) fail(c *gin.Context, msg string, err error) {
	h.logger.Error(c.Request.Context(), msg, "path", c.Request.URL.Path, "error", err)
	web.ServerError(c)
}

func detailURL(username string, id uint) string {
	return fmt.Sprintf("/%s/%d/", username, id)
}

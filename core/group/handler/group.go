// Package handler exposes the group pages.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/yatube/core/group/structs"
	postStructs "github.com/ncobase/yatube/core/post/structs"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/ncobase/yatube/paging"
	"github.com/ncobase/yatube/web"
)

// GroupService is the part of the group service the pages use
type GroupService interface {
	GetBySlug(ctx context.Context, slug string) (*structs.Group, error)
	List(ctx context.Context) ([]*structs.Group, error)
}

// PostLister lists the posts of a group
type PostLister interface {
	ListByGroup(ctx context.Context, groupID uint, page string) (*paging.Page[*postStructs.Post], error)
}

// GroupHandler handles the group pages.
type GroupHandler struct {
	groupService GroupService
	posts        PostLister
	logger       *logger.Logger
}

// NewGroupHandler creates a new group handler.
func NewGroupHandler(groupService GroupService, posts PostLister, logger *logger.Logger) *GroupHandler {
	return &GroupHandler{groupService: groupService, posts: posts, logger: logger}
}

// Index lists every group.
func (h *GroupHandler) Index(c *gin.Context) {
	groups, err := h.groupService.List(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to list groups", "error", err)
		web.ServerError(c)
		return
	}
	web.HTML(c, http.StatusOK, "groups/index.html", gin.H{"groups": groups})
}

// Detail lists the posts of the group named by the slug.
func (h *GroupHandler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	group, err := h.groupService.GetBySlug(ctx, c.Param("slug"))
	if errors.Is(err, structs.ErrGroupNotFound) {
		web.NotFound(c)
		return
	}
	if err != nil {
		h.logger.Error(ctx, "failed to load group", "slug", c.Param("slug"), "error", err)
		web.ServerError(c)
		return
	}

	page, err := h.posts.ListByGroup(ctx, group.ID, c.Query("page"))
	if err != nil {
		h.logger.Error(ctx, "failed to list group posts", "group_id", group.ID, "error", err)
		web.ServerError(c)
		return
	}

	web.HTML(c, http.StatusOK, "posts/group.html", gin.H{"group": group, "page": page})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"brashfox-backend/internal/domains/blog"
	"brashfox-backend/internal/shared/middleware"
	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/response"
	"brashfox-backend/internal/shared/utils"
	"brashfox-backend/pkg/logger"
)

type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{service: service}
}

// Create handles POST /blog-posts/ — authenticated only. The caller becomes
// the post's author.
func (h *BlogHandler) Create(c *gin.Context) {
	identity := middleware.Identity(c)
	if identity == nil {
		response.Unauthorized(c, permission.ErrUnauthenticated.Error())
		return
	}

	var req blog.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.service.CreatePost(c.Request.Context(), identity, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/blog-posts/"+dto.Slug)
	response.Success(c, http.StatusCreated, dto)
}

// List handles GET /blog-posts/ — public, newest first.
func (h *BlogHandler) List(c *gin.Context) {
	var page utils.PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page.Normalize()

	posts, total, err := h.service.ListPosts(c.Request.Context(), page.Page, page.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, &response.Meta{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Get handles GET /blog-posts/:slug — public.
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.service.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post.ToDetailDTO())
}

// Update handles PUT/PATCH /blog-posts/:slug — author or admin. The slug is
// immutable; one in the payload is ignored.
func (h *BlogHandler) Update(c *gin.Context) {
	post, ok := h.loadForWrite(c)
	if !ok {
		return
	}

	var req blog.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.service.UpdatePost(c.Request.Context(), post, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// Delete handles DELETE /blog-posts/:slug — author or admin.
func (h *BlogHandler) Delete(c *gin.Context) {
	post, ok := h.loadForWrite(c)
	if !ok {
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), post); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// loadForWrite fetches the post and runs the author-or-read-only check
// against the caller. Existence is reported before authorization so that a
// write to a missing slug is a 404, not a 401.
func (h *BlogHandler) loadForWrite(c *gin.Context) (*blog.BlogPost, bool) {
	post, err := h.service.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}

	identity := middleware.Identity(c)
	author := permission.Owner{UserID: post.AuthorID, Username: post.AuthorUsername}
	if err := permission.AuthorOrReadOnly(c.Request.Method, identity, author); err != nil {
		h.handleError(c, err)
		return nil, false
	}
	return post, true
}

func (h *BlogHandler) handleError(c *gin.Context, err error) {
	if response.MapCommonError(c, err) {
		return
	}

	switch {
	case errors.Is(err, blog.ErrPostNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, blog.ErrSlugAlreadyExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, blog.ErrCategoryNotFound):
		response.UnprocessableEntity(c, err.Error())
	default:
		logger.Error("blog handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}

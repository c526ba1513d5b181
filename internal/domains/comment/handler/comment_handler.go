package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brashfox-backend/internal/domains/comment"
	"brashfox-backend/internal/shared/middleware"
	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/response"
	"brashfox-backend/internal/shared/utils"
	"brashfox-backend/pkg/logger"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /comments/ — authenticated only. The author is
// stamped from the caller's identity.
func (h *CommentHandler) Create(c *gin.Context) {
	identity := middleware.Identity(c)
	if identity == nil {
		response.Unauthorized(c, permission.ErrUnauthenticated.Error())
		return
	}

	var req comment.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), identity, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List handles GET /comments/ — public, oldest first, optionally
// filtered by ?post=<id>.
func (h *CommentHandler) List(c *gin.Context) {
	var page utils.PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page.Normalize()

	var postID *int64
	if raw := c.Query("post"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid post filter")
			return
		}
		postID = &id
	}

	comments, total, err := h.service.List(c.Request.Context(), postID, page.Page, page.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, comments, &response.Meta{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// ListForPost handles GET /blog-posts/:slug/comments/ — the thread for one
// post, oldest first, unpaginated.
func (h *CommentHandler) ListForPost(c *gin.Context) {
	comments, err := h.service.ListForPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// Get handles GET /comments/:id — public.
func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := commentID(c)
	if !ok {
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, found)
}

// Update handles PUT/PATCH /comments/:id — author or admin.
func (h *CommentHandler) Update(c *gin.Context) {
	existing, ok := h.loadForWrite(c)
	if !ok {
		return
	}

	var req comment.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), existing, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /comments/:id — author or admin.
func (h *CommentHandler) Delete(c *gin.Context) {
	existing, ok := h.loadForWrite(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), existing.ID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) loadForWrite(c *gin.Context) (*comment.PostComment, bool) {
	id, ok := commentID(c)
	if !ok {
		return nil, false
	}

	existing, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}

	identity := middleware.Identity(c)
	author := permission.Owner{Username: existing.Author}
	if err := permission.AuthorOrReadOnly(c.Request.Method, identity, author); err != nil {
		h.handleError(c, err)
		return nil, false
	}
	return existing, true
}

func commentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	if response.MapCommonError(c, err) {
		return
	}

	switch {
	case errors.Is(err, comment.ErrCommentNotFound), errors.Is(err, comment.ErrPostNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("comment handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}

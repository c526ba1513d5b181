package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brashfox-backend/internal/domains/phototag"
	"brashfox-backend/internal/shared/response"
	"brashfox-backend/pkg/logger"
)

// TagHandler serves photo tags. Reads are public; writes require
// authentication, enforced by route middleware.
type TagHandler struct {
	service phototag.Service
}

func NewTagHandler(service phototag.Service) *TagHandler {
	return &TagHandler{service: service}
}

func (h *TagHandler) Create(c *gin.Context) {
	var req phototag.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, t)
}

func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tags)
}

func (h *TagHandler) Get(c *gin.Context) {
	id, ok := tagID(c)
	if !ok {
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

func (h *TagHandler) Update(c *gin.Context) {
	id, ok := tagID(c)
	if !ok {
		return
	}

	var req phototag.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := tagID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func tagID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *TagHandler) handleError(c *gin.Context, err error) {
	if response.MapCommonError(c, err) {
		return
	}

	switch {
	case errors.Is(err, phototag.ErrTagNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, phototag.ErrTagAlreadyExists):
		response.Conflict(c, err.Error())
	default:
		logger.Error("photo tag handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brashfox-backend/internal/domains/photocategory"
	"brashfox-backend/internal/shared/middleware"
	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/response"
	"brashfox-backend/pkg/logger"
)

// CategoryHandler serves photo categories. Reads are public, writes are
// admin only.
type CategoryHandler struct {
	service photocategory.Service
}

func NewCategoryHandler(service photocategory.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	if !h.authorize(c) {
		return
	}

	var req photocategory.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}

	category, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	if !h.authorize(c) {
		return
	}

	id, ok := categoryID(c)
	if !ok {
		return
	}

	var req photocategory.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, category)
}

// Delete removes the category, its photos, and their stored objects.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if !h.authorize(c) {
		return
	}

	id, ok := categoryID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) authorize(c *gin.Context) bool {
	identity := middleware.Identity(c)
	if err := permission.AdminOrReadOnly(c.Request.Method, identity); err != nil {
		h.handleError(c, err)
		return false
	}
	return true
}

func categoryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	if response.MapCommonError(c, err) {
		return
	}

	switch {
	case errors.Is(err, photocategory.ErrCategoryNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("photo category handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}

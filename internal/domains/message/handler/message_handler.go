package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brashfox-backend/internal/domains/message"
	"brashfox-backend/internal/shared/middleware"
	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/response"
	"brashfox-backend/internal/shared/utils"
	"brashfox-backend/pkg/logger"
)

// MessageHandler serves the contact form. Create is anonymous and throttled
// at the route level; everything else is staff only.
type MessageHandler struct {
	service message.Service
}

func NewMessageHandler(service message.Service) *MessageHandler {
	return &MessageHandler{service: service}
}

// Create handles POST /messages/ — anonymous, throttled.
func (h *MessageHandler) Create(c *gin.Context) {
	var req message.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List handles GET /messages/ — staff only.
func (h *MessageHandler) List(c *gin.Context) {
	if !h.requireStaff(c) {
		return
	}

	var page utils.PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page.Normalize()

	messages, total, err := h.service.List(c.Request.Context(), page.Page, page.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, messages, &response.Meta{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Get handles GET /messages/:id — staff only.
func (h *MessageHandler) Get(c *gin.Context) {
	if !h.requireStaff(c) {
		return
	}

	id, ok := messageID(c)
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

// Delete handles DELETE /messages/:id — staff only.
func (h *MessageHandler) Delete(c *gin.Context) {
	if !h.requireStaff(c) {
		return
	}

	id, ok := messageID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// requireStaff gates the read side too: an anonymous GET is 401, an
// authenticated non-staff GET is 403.
func (h *MessageHandler) requireStaff(c *gin.Context) bool {
	identity := middleware.Identity(c)
	if identity == nil {
		response.Unauthorized(c, permission.ErrUnauthenticated.Error())
		return false
	}
	if !identity.IsStaff {
		response.Forbidden(c, permission.ErrForbidden.Error())
		return false
	}
	return true
}

func messageID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *MessageHandler) handleError(c *gin.Context, err error) {
	if response.MapCommonError(c, err) {
		return
	}

	switch {
	case errors.Is(err, message.ErrMessageNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("message handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brashfox-backend/internal/domains/user"
	"brashfox-backend/internal/shared/middleware"
	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/response"
	"brashfox-backend/internal/shared/utils"
	"brashfox-backend/pkg/logger"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /users/ — account registration. Anonymous, throttled
// at the route level.
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/users/"+strconv.FormatInt(dto.ID, 10))
	response.Success(c, http.StatusCreated, dto)
}

// List handles GET /users/ — authenticated only.
func (h *UserHandler) List(c *gin.Context) {
	var page utils.PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page.Normalize()

	users, total, err := h.service.List(c.Request.Context(), page.Page, page.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, users, &response.Meta{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Get handles GET /users/:id — authenticated only. The literal id "me"
// resolves to the caller's own profile with activity statistics.
func (h *UserHandler) Get(c *gin.Context) {
	if c.Param("id") == "me" {
		h.Me(c)
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// Me handles GET /users/me/ — the caller's profile plus activity statistics.
func (h *UserHandler) Me(c *gin.Context) {
	identity := middleware.Identity(c)

	profile, err := h.service.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// Update handles PUT/PATCH /users/:id — owner or admin.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	identity := middleware.Identity(c)
	if err := permission.OwnerOrReadOnly(c.Request.Method, identity, permission.Owner{UserID: id}); err != nil {
		h.handleError(c, err)
		return
	}

	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// Delete handles DELETE /users/:id — owner or admin.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	identity := middleware.Identity(c)
	if err := permission.OwnerOrReadOnly(c.Request.Method, identity, permission.Owner{UserID: id}); err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	if response.MapCommonError(c, err) {
		return
	}

	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, user.ErrUsernameAlreadyExists), errors.Is(err, user.ErrEmailAlreadyExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	default:
		logger.Error("user handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}

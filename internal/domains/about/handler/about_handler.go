package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"brashfox-backend/internal/domains/about"
	"brashfox-backend/internal/shared/middleware"
	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/response"
	"brashfox-backend/pkg/logger"
)

// AboutHandler serves the owner profile singleton. GET is public; POST and
// PUT are admin only. DELETE is not routed.
type AboutHandler struct {
	service about.Service
}

func NewAboutHandler(service about.Service) *AboutHandler {
	return &AboutHandler{service: service}
}

// Get handles GET /about/ — public; 404 until the profile is configured.
func (h *AboutHandler) Get(c *gin.Context) {
	a, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// Create handles POST /about/ — admin only; fails with a conflict once the
// profile exists.
func (h *AboutHandler) Create(c *gin.Context) {
	if !h.authorize(c) {
		return
	}

	req, avatar, ok := h.bind(c)
	if !ok {
		return
	}

	a, err := h.service.Create(c.Request.Context(), req, avatar)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, a)
}

// Replace handles PUT /about/ — admin only; creates the profile when absent,
// replaces it otherwise.
func (h *AboutHandler) Replace(c *gin.Context) {
	if !h.authorize(c) {
		return
	}

	req, avatar, ok := h.bind(c)
	if !ok {
		return
	}

	a, err := h.service.Replace(c.Request.Context(), req, avatar)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

func (h *AboutHandler) authorize(c *gin.Context) bool {
	identity := middleware.Identity(c)
	if err := permission.AdminOrReadOnly(c.Request.Method, identity); err != nil {
		h.handleError(c, err)
		return false
	}
	return true
}

// bind accepts either a JSON body or a multipart form. The multipart
// variant carries the optional profile image plus JSON-encoded
// specializations and social_links fields.
func (h *AboutHandler) bind(c *gin.Context) (about.Request, *about.Avatar, bool) {
	var req about.Request

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return req, nil, false
		}
		return req, nil, true
	}

	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return req, nil, false
	}

	if raw := c.PostForm("specializations"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Specializations); err != nil {
			response.BadRequest(c, "specializations must be a JSON array of strings")
			return req, nil, false
		}
	}
	if raw := c.PostForm("social_links"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.SocialLinks); err != nil {
			response.BadRequest(c, "social_links must be a JSON object of strings")
			return req, nil, false
		}
	}

	fileHeader, err := c.FormFile("profile_image")
	if err != nil {
		return req, nil, true
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return req, nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return req, nil, false
	}

	return req, &about.Avatar{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Data:     data,
	}, true
}

func (h *AboutHandler) handleError(c *gin.Context, err error) {
	if response.MapCommonError(c, err) {
		return
	}

	switch {
	case errors.Is(err, about.ErrNotConfigured):
		response.NotFound(c, err.Error())
	case errors.Is(err, about.ErrAlreadyConfigured):
		response.Conflict(c, err.Error())
	default:
		logger.Error("about handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}

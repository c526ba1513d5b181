package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brashfox-backend/internal/domains/photo"
	"brashfox-backend/internal/shared/middleware"
	"brashfox-backend/internal/shared/permission"
	"brashfox-backend/internal/shared/response"
	"brashfox-backend/internal/shared/utils"
	"brashfox-backend/pkg/logger"
)

type PhotoHandler struct {
	service photo.Service
}

func NewPhotoHandler(service photo.Service) *PhotoHandler {
	return &PhotoHandler{service: service}
}

// Create handles POST /photos/ — authenticated multipart upload. The image
// file goes in the "image" part, the metadata in form fields.
func (h *PhotoHandler) Create(c *gin.Context) {
	identity := middleware.Identity(c)
	if identity == nil {
		response.Unauthorized(c, permission.ErrUnauthenticated.Error())
		return
	}

	var req photo.CreateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.handleError(c, photo.ErrImageRequired)
		return
	}
	upload, ok := readUpload(c, fileHeader)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), identity, req, upload)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/api/v1/photos/"+strconv.FormatInt(created.ID, 10))
	response.Success(c, http.StatusCreated, created)
}

// List handles GET /photos/ — public, newest first, filterable by
// ?category=<id> and ?tag=<id>.
func (h *PhotoHandler) List(c *gin.Context) {
	var page utils.PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page.Normalize()

	filter, ok := listFilter(c)
	if !ok {
		return
	}

	photos, total, err := h.service.List(c.Request.Context(), filter, page.Page, page.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, photos, &response.Meta{
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Get handles GET /photos/:id — public, full DTO.
func (h *PhotoHandler) Get(c *gin.Context) {
	id, ok := photoID(c)
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

// Update handles PUT/PATCH /photos/:id — author or admin. A new image part
// replaces the stored one.
func (h *PhotoHandler) Update(c *gin.Context) {
	existing, ok := h.loadForWrite(c)
	if !ok {
		return
	}

	var req photo.UpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var upload *photo.Upload
	if fileHeader, err := c.FormFile("image"); err == nil {
		u, ok := readUpload(c, fileHeader)
		if !ok {
			return
		}
		upload = &u
	}

	updated, err := h.service.Update(c.Request.Context(), existing, req, upload)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /photos/:id — author or admin.
func (h *PhotoHandler) Delete(c *gin.Context) {
	existing, ok := h.loadForWrite(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), existing); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PhotoHandler) loadForWrite(c *gin.Context) (*photo.Photo, bool) {
	id, ok := photoID(c)
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

func readUpload(c *gin.Context, fh *multipart.FileHeader) (photo.Upload, bool) {
	file, err := fh.Open()
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return photo.Upload{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "cannot read uploaded file")
		return photo.Upload{}, false
	}

	return photo.Upload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Data:     data,
	}, true
}

func listFilter(c *gin.Context) (photo.ListFilter, bool) {
	var filter photo.ListFilter
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid category filter")
			return filter, false
		}
		filter.CategoryID = &id
	}
	if raw := c.Query("tag"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid tag filter")
			return filter, false
		}
		filter.TagID = &id
	}
	return filter, true
}

func photoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *PhotoHandler) handleError(c *gin.Context, err error) {
	if response.MapCommonError(c, err) {
		return
	}

	switch {
	case errors.Is(err, photo.ErrPhotoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, photo.ErrImageRequired):
		response.BadRequest(c, err.Error())
	case errors.Is(err, photo.ErrCategoryNotFound), errors.Is(err, photo.ErrTagNotFound):
		response.UnprocessableEntity(c, err.Error())
	default:
		logger.Error("photo handler error", err)
		response.InternalServerError(c, "internal server error")
	}
}

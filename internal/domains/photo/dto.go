package photo

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"brashfox-backend/internal/domains/phototag"
)

// CreateRequest uploads a photo. Sent as multipart form fields alongside the
// image file; the author is always the authenticated caller.
type CreateRequest struct {
	Name       string  `form:"name" binding:"required"`
	Event      string  `form:"event"`
	CategoryID int64   `form:"category_id" binding:"required"`
	TagIDs     []int64 `form:"tag_ids"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Event, validation.Length(0, 255)),
		validation.Field(&r.CategoryID, validation.Required.Error("category_id is required")),
	)
}

// UpdateRequest edits a photo's metadata and, optionally, replaces the image
// file (revalidated like a fresh upload).
type UpdateRequest struct {
	Name       *string  `form:"name"`
	Event      *string  `form:"event"`
	CategoryID *int64   `form:"category_id"`
	TagIDs     *[]int64 `form:"tag_ids"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.When(r.Name != nil, validation.Length(1, 255))),
		validation.Field(&r.Event, validation.When(r.Event != nil, validation.Length(0, 255))),
	)
}

// Upload carries the raw image file through the service layer.
type Upload struct {
	Filename string
	Size     int64
	Data     []byte
}

// ListDTO is the minimal variant returned by the list endpoint.
type ListDTO struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CategoryID   int64     `json:"category_id"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Created      time.Time `json:"created"`
}

// ListFilter narrows the photo listing.
type ListFilter struct {
	CategoryID *int64
	TagID      *int64
}

func (p *Photo) ToListDTO() ListDTO {
	return ListDTO{
		ID:           p.ID,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		ThumbnailURL: p.ThumbnailURL,
		Created:      p.Created,
	}
}

// ToDetailDTO normalizes the full entity for responses.
func (p *Photo) ToDetailDTO() *Photo {
	if p.Tags == nil {
		p.Tags = []phototag.Tag{}
	}
	return p
}

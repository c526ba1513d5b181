package phototag

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	shared "brashfox-backend/internal/shared/validation"
)

// Tag is a free-form label attached to photos, N-N.
type Tag struct {
	ID  int64  `json:"id"`
	Tag string `json:"tag"`
}

// Request creates or renames a tag.
type Request struct {
	Tag string `json:"tag" binding:"required"`
}

func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Tag,
			validation.Required.Error("tag is required"),
			validation.Length(1, 64),
			validation.Match(shared.TagPattern).
				Error("tag can only contain letters, numbers, hyphens, and underscores"),
		),
	)
}

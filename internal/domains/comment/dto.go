package comment

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateRequest posts a comment. The author is always the authenticated
// caller; an author field in the payload is not accepted.
type CreateRequest struct {
	PostID  int64  `json:"post_id" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PostID, validation.Required.Error("post_id is required")),
		validation.Field(&r.Comment, validation.Required.Error("comment is required")),
	)
}

// UpdateRequest edits a comment's text. The post link and author are
// immutable.
type UpdateRequest struct {
	Comment string `json:"comment" binding:"required"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Comment, validation.Required.Error("comment is required")),
	)
}

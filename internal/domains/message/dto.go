package message

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateRequest is the public contact form.
type CreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Topic   string `json:"topic" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 64),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email,
		),
		validation.Field(&r.Topic,
			validation.Required.Error("topic is required"),
			validation.Length(1, 64),
		),
		validation.Field(&r.Message, validation.Required.Error("message is required")),
	)
}

package about

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Request creates or replaces the profile. Sent as multipart so the profile
// image can ride along; specializations and social links arrive as JSON
// strings in their form fields.
type Request struct {
	Title           string            `json:"title" form:"title" binding:"required"`
	Name            string            `json:"name" form:"name" binding:"required"`
	Bio             string            `json:"bio" form:"bio"`
	Specializations []string          `json:"specializations" form:"-"`
	Email           string            `json:"email" form:"email"`
	Phone           string            `json:"phone" form:"phone"`
	SocialLinks     map[string]string `json:"social_links" form:"-"`
}

func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 150),
		),
		validation.Field(&r.Email, validation.When(r.Email != "", is.Email)),
		validation.Field(&r.Phone, validation.Length(0, 32)),
	)
}

// Avatar carries the optional profile image upload.
type Avatar struct {
	Filename string
	Size     int64
	Data     []byte
}

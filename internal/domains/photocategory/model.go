package photocategory

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Category groups photos. Deleting a category deletes its photos and their
// stored image objects.
type Category struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
}

// Request creates or renames a photo category.
type Request struct {
	Category string `json:"category" binding:"required"`
}

func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, 100),
		),
	)
}

package photo

import "errors"

var (
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrCategoryNotFound = errors.New("photo category not found")
	ErrTagNotFound      = errors.New("photo tag not found")
	ErrImageRequired    = errors.New("image file is required")
)

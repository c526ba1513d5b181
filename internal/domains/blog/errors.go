package blog

import "errors"

var (
	ErrPostNotFound      = errors.New("blog post not found")
	ErrSlugAlreadyExists = errors.New("blog post with this slug already exists")
	ErrCategoryNotFound  = errors.New("post category not found")
)

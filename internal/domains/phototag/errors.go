package phototag

import "errors"

var (
	ErrTagNotFound      = errors.New("photo tag not found")
	ErrTagAlreadyExists = errors.New("photo tag already exists")
)

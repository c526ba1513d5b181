package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("user with this username already exists")
	ErrEmailAlreadyExists    = errors.New("user with this email already exists")
	ErrInvalidCredentials    = errors.New("invalid username or password")
)

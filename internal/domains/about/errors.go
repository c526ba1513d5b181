package about

import "errors"

var (
	ErrNotConfigured     = errors.New("about page has not been configured")
	ErrAlreadyConfigured = errors.New("about page already exists")
)

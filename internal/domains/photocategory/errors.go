package photocategory

import "errors"

var ErrCategoryNotFound = errors.New("photo category not found")

package utils

import "brashfox-backend/internal/shared/validation"

// PageParams are the common list-endpoint query parameters.
type PageParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize applies defaults and caps the page size.
func (p *PageParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = validation.DefaultPageSize
	}
	if p.Limit > validation.MaxPageSize {
		p.Limit = validation.MaxPageSize
	}
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

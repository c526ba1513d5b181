package blog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	shared "brashfox-backend/internal/shared/validation"
)

// CreateRequest creates a blog post. The slug is optional; when absent it is
// derived from the title.
type CreateRequest struct {
	Title       string  `json:"title" binding:"required"`
	Post        string  `json:"post" binding:"required"`
	Slug        string  `json:"slug,omitempty"`
	CategoryIDs []int64 `json:"category_ids,omitempty"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Post, validation.Required.Error("post is required")),
		validation.Field(&r.Slug,
			validation.When(r.Slug != "",
				validation.Length(1, 255),
				validation.Match(shared.SlugPattern).
					Error("slug can only contain letters, numbers, hyphens, and underscores"),
			),
		),
	)
}

// UpdateRequest updates a post. A slug in the payload is accepted but
// ignored: the slug is immutable once set.
type UpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Post        *string  `json:"post,omitempty"`
	Slug        *string  `json:"slug,omitempty"`
	CategoryIDs *[]int64 `json:"category_ids,omitempty"`
}

// CategoryRequest creates or renames a post category.
type CategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(1, 100),
		),
	)
}

// ListDTO is the minimal variant returned by the list endpoint.
type ListDTO struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	AuthorUsername string    `json:"author_username"`
	Created        time.Time `json:"created"`
}

// DetailDTO is the full variant returned by retrieve/create/update.
type DetailDTO struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Post           string     `json:"post"`
	Slug           string     `json:"slug"`
	AuthorID       int64      `json:"author_id"`
	AuthorUsername string     `json:"author_username"`
	Categories     []Category `json:"categories"`
	Created        time.Time  `json:"created"`
	Edited         time.Time  `json:"edited"`
}

func (p *BlogPost) ToListDTO() ListDTO {
	return ListDTO{
		ID:             p.ID,
		Title:          p.Title,
		Slug:           p.Slug,
		AuthorUsername: p.AuthorUsername,
		Created:        p.Created,
	}
}

func (p *BlogPost) ToDetailDTO() DetailDTO {
	categories := p.Categories
	if categories == nil {
		categories = []Category{}
	}
	return DetailDTO{
		ID:             p.ID,
		Title:          p.Title,
		Post:           p.Post,
		Slug:           p.Slug,
		AuthorID:       p.AuthorID,
		AuthorUsername: p.AuthorUsername,
		Categories:     categories,
		Created:        p.Created,
		Edited:         p.Edited,
	}
}

package blog

import (
	"context"

	"brashfox-backend/internal/shared/permission"
)

// Service is the blog business-logic contract.
type Service interface {
	CreatePost(ctx context.Context, author *permission.Identity, req CreateRequest) (*DetailDTO, error)
	GetPost(ctx context.Context, slug string) (*BlogPost, error)
	ListPosts(ctx context.Context, page, limit int) ([]ListDTO, int, error)
	UpdatePost(ctx context.Context, post *BlogPost, req UpdateRequest) (*DetailDTO, error)
	DeletePost(ctx context.Context, post *BlogPost) error
}

// CategoryService is the post-category business-logic contract.
type CategoryService interface {
	Create(ctx context.Context, name string) (*Category, error)
	Get(ctx context.Context, id int64) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, id int64, name string) (*Category, error)
	Delete(ctx context.Context, id int64) error
}

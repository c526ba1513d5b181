package blog

import "context"

// Repository is the blog data-access contract. Create and Update run their
// multi-step writes (post row plus category links) inside a single
// transaction; a slug unique violation surfaces as ErrSlugAlreadyExists.
type Repository interface {
	Create(ctx context.Context, post *BlogPost, categoryIDs []int64) (int64, error)
	FindBySlug(ctx context.Context, slug string) (*BlogPost, error)
	List(ctx context.Context, limit, offset int) ([]BlogPost, int, error)
	Update(ctx context.Context, post *BlogPost, categoryIDs *[]int64) error
	Delete(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// CategoryRepository is the post-category data-access contract.
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) (int64, error)
	FindByID(ctx context.Context, id int64) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
}

package comment

import "context"

// Repository is the comment data-access contract. Listings return comments
// oldest first, the canonical thread order. Creating against a missing post
// surfaces as ErrPostNotFound.
type Repository interface {
	Create(ctx context.Context, c *PostComment) (int64, error)
	FindByID(ctx context.Context, id int64) (*PostComment, error)
	List(ctx context.Context, postID *int64, limit, offset int) ([]PostComment, int, error)
	ListForPostSlug(ctx context.Context, slug string) ([]PostComment, error)
	Update(ctx context.Context, c *PostComment) error
	Delete(ctx context.Context, id int64) error
}

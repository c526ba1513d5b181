package comment

import (
	"context"

	"brashfox-backend/internal/shared/permission"
)

// Service is the comment business-logic contract.
type Service interface {
	Create(ctx context.Context, author *permission.Identity, req CreateRequest) (*PostComment, error)
	Get(ctx context.Context, id int64) (*PostComment, error)
	List(ctx context.Context, postID *int64, page, limit int) ([]PostComment, int, error)
	ListForPost(ctx context.Context, slug string) ([]PostComment, error)
	Update(ctx context.Context, existing *PostComment, req UpdateRequest) (*PostComment, error)
	Delete(ctx context.Context, id int64) error
}

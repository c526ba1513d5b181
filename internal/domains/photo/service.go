package photo

import (
	"context"

	"brashfox-backend/internal/shared/permission"
)

// Service is the photo business-logic contract.
type Service interface {
	Create(ctx context.Context, author *permission.Identity, req CreateRequest, upload Upload) (*Photo, error)
	Get(ctx context.Context, id int64) (*Photo, error)
	List(ctx context.Context, filter ListFilter, page, limit int) ([]ListDTO, int, error)
	Update(ctx context.Context, existing *Photo, req UpdateRequest, upload *Upload) (*Photo, error)
	Delete(ctx context.Context, existing *Photo) error
}

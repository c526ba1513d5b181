package phototag

import "context"

// Service is the photo-tag business-logic contract.
type Service interface {
	Create(ctx context.Context, req Request) (*Tag, error)
	Get(ctx context.Context, id int64) (*Tag, error)
	List(ctx context.Context) ([]Tag, error)
	Update(ctx context.Context, id int64, req Request) (*Tag, error)
	Delete(ctx context.Context, id int64) error
}

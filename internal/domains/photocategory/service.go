package photocategory

import "context"

// Service is the photo-category business-logic contract.
type Service interface {
	Create(ctx context.Context, req Request) (*Category, error)
	Get(ctx context.Context, id int64) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, id int64, req Request) (*Category, error)
	Delete(ctx context.Context, id int64) error
}

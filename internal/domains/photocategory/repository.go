package photocategory

import "context"

// Repository is the photo-category data-access contract. Delete cascades the
// category's photo rows; PhotoImageKeys exists so the service can clean up
// the stored objects afterwards.
type Repository interface {
	Create(ctx context.Context, c *Category) (int64, error)
	FindByID(ctx context.Context, id int64) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id int64) error
	PhotoImageKeys(ctx context.Context, categoryID int64) ([]string, error)
}

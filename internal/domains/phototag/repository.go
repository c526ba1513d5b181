package phototag

import "context"

// Repository is the photo-tag data-access contract. Tag text is unique; a
// duplicate surfaces as ErrTagAlreadyExists.
type Repository interface {
	Create(ctx context.Context, t *Tag) (int64, error)
	FindByID(ctx context.Context, id int64) (*Tag, error)
	List(ctx context.Context) ([]Tag, error)
	Update(ctx context.Context, t *Tag) error
	Delete(ctx context.Context, id int64) error
}

package photo

import "context"

// Repository is the photo data-access contract. Create and Update run the
// photo row and its tag links in one transaction; a category FK violation
// surfaces as ErrCategoryNotFound, a tag FK violation as ErrTagNotFound.
type Repository interface {
	Create(ctx context.Context, p *Photo, tagIDs []int64) (int64, error)
	FindByID(ctx context.Context, id int64) (*Photo, error)
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]Photo, int, error)
	Update(ctx context.Context, p *Photo, tagIDs *[]int64) error
	Delete(ctx context.Context, id int64) error
}

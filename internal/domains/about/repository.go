package about

import "context"

// Repository is the singleton-profile data-access contract. Create of a
// second row surfaces as ErrAlreadyConfigured; Get of an absent row as
// ErrNotConfigured.
type Repository interface {
	Get(ctx context.Context) (*AboutMe, error)
	Create(ctx context.Context, a *AboutMe) (int64, error)
	Replace(ctx context.Context, a *AboutMe) error
}

package about

import "context"

// Service is the singleton-profile business-logic contract.
type Service interface {
	Get(ctx context.Context) (*AboutMe, error)
	Create(ctx context.Context, req Request, avatar *Avatar) (*AboutMe, error)
	Replace(ctx context.Context, req Request, avatar *Avatar) (*AboutMe, error)
}

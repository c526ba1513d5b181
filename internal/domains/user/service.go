package user

import "context"

// Service is the user business-logic contract.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*DTO, error)
	Authenticate(ctx context.Context, req LoginRequest) (*User, error)
	GetByID(ctx context.Context, id int64) (*DTO, error)
	GetProfile(ctx context.Context, id int64) (*ProfileDTO, error)
	List(ctx context.Context, page, limit int) ([]DTO, int, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*DTO, error)
	Delete(ctx context.Context, id int64) error
}

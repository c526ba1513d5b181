package user

import "context"

// Repository is the user data-access contract. The check-then-act existence
// helpers are a fast path only; Create must still map the database unique
// constraint to the duplicate sentinels.
type Repository interface {
	Create(ctx context.Context, u *User) (int64, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, limit, offset int) ([]User, int, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetStatistics(ctx context.Context, u *User) (*Statistics, error)
}

package message

import "context"

// Repository is the contact-message data-access contract.
type Repository interface {
	Create(ctx context.Context, m *Message) (int64, error)
	FindByID(ctx context.Context, id int64) (*Message, error)
	List(ctx context.Context, limit, offset int) ([]Message, int, error)
	Delete(ctx context.Context, id int64) error
}

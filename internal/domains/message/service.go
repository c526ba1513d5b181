package message

import "context"

// Service is the contact-message business-logic contract. Create persists
// first and then notifies the admin, best effort: a notification failure is
// logged and never surfaced to the caller.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Message, error)
	Get(ctx context.Context, id int64) (*Message, error)
	List(ctx context.Context, page, limit int) ([]Message, int, error)
	Delete(ctx context.Context, id int64) error
}

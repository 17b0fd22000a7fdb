package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	// Newest first.
	ListByCustomerID(ctx context.Context, customerID string) ([]Payment, error)
}

package paymentmock

import (
	"context"

	domain "studentloan-backend/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, p *domain.Payment) error
	ListByCustomerIDFn func(ctx context.Context, customerID string) ([]domain.Payment, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID string) ([]domain.Payment, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, context.Canceled
}

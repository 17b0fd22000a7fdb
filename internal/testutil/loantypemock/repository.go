package loantypemock

import (
	"context"

	domain "studentloan-backend/internal/domain/loantype"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListFn    func(ctx context.Context) ([]domain.LoanType, error)
	GetByIDFn func(ctx context.Context, id uint64) (*domain.LoanType, error)
}

func (m *Repo) List(ctx context.Context) ([]domain.LoanType, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanType, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

package loanmock

import (
	"context"

	domain "studentloan-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Reads default to context.Canceled, writes to a no-op.
type Repo struct {
	CreateFn              func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn         func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetApprovedByLoanIDFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	UpdateStatusFn        func(ctx context.Context, loanID string, s domain.Status) (int64, error)
	UpdateBalanceFn       func(ctx context.Context, id uint64, from, to decimal.Decimal) (int64, error)
	DeleteSettledFn       func(ctx context.Context, id uint64, from decimal.Decimal) (int64, error)
	ListDashboardFn       func(ctx context.Context, customerID string) ([]domain.DashboardRow, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetApprovedByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetApprovedByLoanIDFn != nil {
		return m.GetApprovedByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateStatus(ctx context.Context, loanID string, s domain.Status) (int64, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, loanID, s)
	}
	return 1, nil
}

func (m *Repo) UpdateBalance(ctx context.Context, id uint64, from, to decimal.Decimal) (int64, error) {
	if m.UpdateBalanceFn != nil {
		return m.UpdateBalanceFn(ctx, id, from, to)
	}
	return 1, nil
}

func (m *Repo) DeleteSettled(ctx context.Context, id uint64, from decimal.Decimal) (int64, error) {
	if m.DeleteSettledFn != nil {
		return m.DeleteSettledFn(ctx, id, from)
	}
	return 1, nil
}

func (m *Repo) ListDashboard(ctx context.Context, customerID string) ([]domain.DashboardRow, error) {
	if m.ListDashboardFn != nil {
		return m.ListDashboardFn(ctx, customerID)
	}
	return nil, context.Canceled
}

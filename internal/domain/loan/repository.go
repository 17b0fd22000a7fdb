package loan

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// Only returns loans in approved state; anything else is gorm.ErrRecordNotFound.
	GetApprovedByLoanID(ctx context.Context, loanID string) (*Loan, error)
	UpdateStatus(ctx context.Context, loanID string, s Status) (int64, error)

	// Conditional writes: they only match while the row is still approved
	// and still holds `from`. Zero rows affected means someone else won.
	UpdateBalance(ctx context.Context, id uint64, from, to decimal.Decimal) (int64, error)
	DeleteSettled(ctx context.Context, id uint64, from decimal.Decimal) (int64, error)

	// Empty customerID lists every loan.
	ListDashboard(ctx context.Context, customerID string) ([]DashboardRow, error)
}

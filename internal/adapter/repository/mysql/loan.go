package mysql

import (
	"context"

	loanDomain "studentloan-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetApprovedByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND status = ?", loanID, loanDomain.StatusApproved).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) UpdateStatus(ctx context.Context, loanID string, s loanDomain.Status) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("loan_id = ?", loanID).
		Update("status", s)
	return res.RowsAffected, res.Error
}

func (r *LoanRepository) UpdateBalance(ctx context.Context, id uint64, from, to decimal.Decimal) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("id = ? AND status = ? AND balance = ?", id, loanDomain.StatusApproved, from).
		Update("balance", to)
	return res.RowsAffected, res.Error
}

func (r *LoanRepository) DeleteSettled(ctx context.Context, id uint64, from decimal.Decimal) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ? AND balance = ?", id, loanDomain.StatusApproved, from).
		Delete(&loanDomain.Loan{})
	return res.RowsAffected, res.Error
}

func (r *LoanRepository) ListDashboard(ctx context.Context, customerID string) ([]loanDomain.DashboardRow, error) {
	q := r.db.WithContext(ctx).
		Table("loans AS l").
		Select(`l.loan_id, l.customer_id, l.loan_type_id, t.name AS loan_type,
			l.start_date, l.end_date, l.status, COALESCE(l.balance, 0) AS balance, l.purpose,
			l.created_at, l.employment_status, l.housing_status, l.terms_agreed,
			l.other_loans, l.educational_purpose,
			c.name AS customer_name, c.email AS customer_email, c.phone AS customer_phone`).
		Joins("JOIN loan_types t ON t.id = l.loan_type_id").
		Joins("JOIN customers c ON c.customer_id = l.customer_id")
	if customerID != "" {
		q = q.Where("l.customer_id = ?", customerID)
	}

	out := []loanDomain.DashboardRow{}
	err := q.Order("l.created_at DESC, l.id DESC").Scan(&out).Error
	return out, err
}

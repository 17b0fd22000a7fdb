package mysql

import (
	"context"

	"studentloan-backend/internal/domain/loantype"

	"gorm.io/gorm"
)

type LoanTypeRepository struct{ db *gorm.DB }

func NewLoanTypeRepository(db *gorm.DB) *LoanTypeRepository { return &LoanTypeRepository{db: db} }

func (r *LoanTypeRepository) List(ctx context.Context) ([]loantype.LoanType, error) {
	out := []loantype.LoanType{}
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LoanTypeRepository) GetByID(ctx context.Context, id uint64) (*loantype.LoanType, error) {
	var out loantype.LoanType
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

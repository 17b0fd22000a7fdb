package loantype

import "context"

// Table: loan_types
type LoanType struct {
	ID   uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name string `gorm:"size:64;not null" json:"name"`
}

func (LoanType) TableName() string { return "loan_types" }

type Repository interface {
	List(ctx context.Context) ([]LoanType, error)
	GetByID(ctx context.Context, id uint64) (*LoanType, error)
}

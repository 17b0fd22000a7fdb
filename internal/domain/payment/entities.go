package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const StatusPaid Status = "paid"

// Table: repayments. Rows are append-only and keep the public loan id even
// after the loan itself has been settled and deleted.
type Payment struct {
	ID         uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID  string          `gorm:"size:32;uniqueIndex:ux_repayments_payment_id" json:"payment_id"`
	LoanID     string          `gorm:"size:32;index:idx_repayments_loan" json:"loan_id"`
	CustomerID string          `gorm:"size:32;index:idx_repayments_customer" json:"customer_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Status     Status          `gorm:"type:varchar(16);not null" json:"status"`
	Note       *string         `gorm:"type:text" json:"note"`
	PaidOn     time.Time       `gorm:"type:date" json:"paid_on"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "repayments" }

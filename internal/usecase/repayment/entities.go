package repayment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Input is one repayment request. Amount stays raw text so that
// non-numeric values are rejected by the processor itself.
type Input struct {
	CallerCustomerID string
	CustomerID       string
	LoanID           string
	Amount           string
	Note             string
}

type Result struct {
	PaymentID string
	// Nil once the loan is fully paid and removed.
	RemainingBalance *decimal.Decimal
	FullyPaid        bool
	Message          string
}

type ResultDTO struct {
	PaymentID        string  `json:"payment_id"`
	Message          string  `json:"message"`
	RemainingBalance *string `json:"remaining_balance"`
	FullyPaid        bool    `json:"fully_paid"`
}

func (r *Result) DTO() ResultDTO {
	out := ResultDTO{PaymentID: r.PaymentID, Message: r.Message, FullyPaid: r.FullyPaid}
	if r.RemainingBalance != nil {
		s := r.RemainingBalance.StringFixed(2)
		out.RemainingBalance = &s
	}
	return out
}

type PaymentDTO struct {
	PaymentID string    `json:"payment_id"`
	LoanID    string    `json:"loan_id"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
	Note      *string   `json:"note"`
	PaidOn    string    `json:"paid_on"`
	CreatedAt time.Time `json:"created_at"`
}

package repayment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainPayment "studentloan-backend/internal/domain/payment"
	"studentloan-backend/internal/domain/uow"
	"studentloan-backend/pkg/id"
	"studentloan-backend/pkg/money"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	msgPartial = "Repayment recorded successfully"
	msgSettled = "Repayment recorded and loan fully paid, loan removed"
)

// Outcome labels reported to the Observer.
const (
	OutcomePartial  = "partial"
	OutcomeSettled  = "settled"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// Observer receives one call per processed repayment.
type Observer interface {
	ObserveRepayment(outcome string, amount decimal.Decimal)
}

type nopObserver struct{}

func (nopObserver) ObserveRepayment(string, decimal.Decimal) {}

type Processor struct {
	uow      uow.UnitOfWork
	payments domainPayment.Repository
	log      *zap.Logger
	obs      Observer
	now      func() time.Time
}

// NewProcessor: payments is the non-transactional repo used for history reads.
func NewProcessor(tx uow.UnitOfWork, payments domainPayment.Repository, log *zap.Logger, obs Observer) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	if obs == nil {
		obs = nopObserver{}
	}
	return &Processor{uow: tx, payments: payments, log: log, obs: obs, now: time.Now}
}

// Process records one repayment against an approved loan. The payment insert
// and the balance update (or the loan delete on payoff) commit together or
// not at all.
func (p *Processor) Process(ctx context.Context, in Input) (*Result, error) {
	in.LoanID = strings.TrimSpace(in.LoanID)
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.Amount = strings.TrimSpace(in.Amount)

	var res *Result
	// parsed before the transaction opens; the error keeps its place in the check order
	amount, amountErr := parseAmount(in.Amount)

	err := p.uow.WithinTx(ctx, func(r uow.Repos) error {
		if in.LoanID == "" || in.CustomerID == "" || in.Amount == "" {
			return domainPayment.ErrInvalidRequest
		}
		if in.CallerCustomerID == "" || in.CallerCustomerID != in.CustomerID {
			return domainPayment.ErrUnauthorized
		}

		l, err := r.Loans.GetApprovedByLoanID(ctx, in.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainPayment.ErrLoanNotFound
			}
			return fmt.Errorf("load loan: %w", err)
		}
		if l.CustomerID != in.CallerCustomerID {
			return domainPayment.ErrUnauthorized
		}
		if l.Balance.IsNegative() {
			return domainPayment.ErrCorruptState
		}

		if amountErr != nil {
			return amountErr
		}
		if amount.GreaterThan(l.Balance) {
			return domainPayment.ErrOverpaymentRejected
		}

		newBalance := l.Balance.Sub(amount)
		if newBalance.IsNegative() {
			newBalance = decimal.Zero
		}

		pay := &domainPayment.Payment{
			PaymentID:  id.NewID32(),
			LoanID:     l.LoanID,
			CustomerID: in.CallerCustomerID,
			Amount:     amount,
			Status:     domainPayment.StatusPaid,
			PaidOn:     p.today(),
		}
		if note := strings.TrimSpace(in.Note); note != "" {
			pay.Note = &note
		}
		if err := r.Payments.Create(ctx, pay); err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		if newBalance.IsZero() {
			n, err := r.Loans.DeleteSettled(ctx, l.ID, l.Balance)
			if err != nil {
				return fmt.Errorf("delete settled loan: %w", err)
			}
			if n == 0 {
				return domainPayment.ErrWriteConflict
			}
			res = &Result{PaymentID: pay.PaymentID, FullyPaid: true, Message: msgSettled}
			return nil
		}

		n, err := r.Loans.UpdateBalance(ctx, l.ID, l.Balance, newBalance)
		if err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		if n == 0 {
			return domainPayment.ErrWriteConflict
		}
		res = &Result{PaymentID: pay.PaymentID, RemainingBalance: &newBalance, Message: msgPartial}
		return nil
	})

	outcome := classify(res, err)
	p.obs.ObserveRepayment(outcome, amount)
	fields := []zap.Field{
		zap.String("loan_id", in.LoanID),
		zap.String("customer_id", in.CustomerID),
		zap.String("amount", in.Amount),
		zap.String("outcome", outcome),
	}
	switch outcome {
	case OutcomeError:
		p.log.Error("repayment failed", append(fields, zap.Error(err))...)
	case OutcomeRejected, OutcomeConflict:
		p.log.Info("repayment rejected", append(fields, zap.Error(err))...)
	default:
		p.log.Info("repayment recorded", append(fields, zap.String("payment_id", res.PaymentID))...)
	}

	if err != nil {
		return nil, err
	}
	return res, nil
}

// History lists the customer's payments, newest first.
func (p *Processor) History(ctx context.Context, customerID string) ([]PaymentDTO, error) {
	if customerID == "" {
		return nil, domainPayment.ErrUnauthorized
	}
	rows, err := p.payments.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, PaymentDTO{
			PaymentID: r.PaymentID,
			LoanID:    r.LoanID,
			Amount:    r.Amount.StringFixed(2),
			Status:    string(r.Status),
			Note:      r.Note,
			PaidOn:    r.PaidOn.Format(time.DateOnly),
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

func (p *Processor) today() time.Time {
	y, m, d := p.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// parseAmount accepts a positive decimal with at most two fractional digits
// that fits the balance column.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := money.Parse(s)
	if err != nil {
		return decimal.Zero, domainPayment.ErrInvalidAmount
	}
	return d, nil
}

// IsRejection reports whether err is one of the repayment validation or
// conflict failures rather than an internal one.
func IsRejection(err error) bool {
	for _, target := range []error{
		domainPayment.ErrInvalidRequest,
		domainPayment.ErrUnauthorized,
		domainPayment.ErrLoanNotFound,
		domainPayment.ErrCorruptState,
		domainPayment.ErrInvalidAmount,
		domainPayment.ErrOverpaymentRejected,
		domainPayment.ErrWriteConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func classify(res *Result, err error) string {
	switch {
	case err == nil && res.FullyPaid:
		return OutcomeSettled
	case err == nil:
		return OutcomePartial
	case errors.Is(err, domainPayment.ErrWriteConflict):
		return OutcomeConflict
	case errors.Is(err, domainPayment.ErrCorruptState):
		return OutcomeError
	case IsRejection(err):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}

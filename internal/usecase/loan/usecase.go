package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"studentloan-backend/internal/domain/customer"
	"studentloan-backend/internal/domain/loan"
	"studentloan-backend/internal/domain/loantype"
	"studentloan-backend/pkg/id"
	"studentloan-backend/pkg/money"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrTermsNotAgreed  = errors.New("terms must be agreed")
	ErrInvalidAmount   = errors.New("amount must be positive with at most two decimals")
	ErrInvalidDates    = errors.New("end_date must not be before start_date")
	ErrForbidden       = errors.New("forbidden")
	ErrUnknownLoanType = errors.New("unknown loan type")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrNoLoanTypes     = errors.New("no loan types found")
)

type Usecase struct {
	repo  loan.Repository
	types loantype.Repository
	log   *zap.Logger
}

func NewUsecase(r loan.Repository, types loantype.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: r, types: types, log: log}
}

// Apply files a new application for caller. It starts pending with the
// requested amount as its balance.
func (u *Usecase) Apply(ctx context.Context, caller customer.Identity, in ApplyInput) (*LoanDTO, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	if in.CustomerID == "" || in.LoanTypeID == 0 || in.StartDate == "" || in.EndDate == "" {
		return nil, ErrMissingFields
	}
	if in.CustomerID != caller.CustomerID {
		return nil, ErrForbidden
	}
	if !in.TermsAgreed {
		return nil, ErrTermsNotAgreed
	}
	if !money.Valid(in.Amount) {
		return nil, ErrInvalidAmount
	}
	start, err := time.Parse(time.DateOnly, in.StartDate)
	if err != nil {
		return nil, ErrInvalidDates
	}
	end, err := time.Parse(time.DateOnly, in.EndDate)
	if err != nil || end.Before(start) {
		return nil, ErrInvalidDates
	}

	if _, err := u.types.GetByID(ctx, in.LoanTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownLoanType
		}
		return nil, fmt.Errorf("lookup loan type: %w", err)
	}

	l := &loan.Loan{
		LoanID:             id.NewID32(),
		CustomerID:         in.CustomerID,
		LoanTypeID:         in.LoanTypeID,
		StartDate:          start,
		EndDate:            end,
		Purpose:            optional(in.Purpose),
		Balance:            in.Amount,
		Status:             loan.StatusPending,
		EmploymentStatus:   optional(in.EmploymentStatus),
		HousingStatus:      optional(in.HousingStatus),
		TermsAgreed:        in.TermsAgreed,
		OtherLoans:         optional(in.OtherLoans),
		EducationalPurpose: in.EducationalPurpose,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create loan: %w", err)
	}

	u.log.Info("loan application filed",
		zap.String("loan_id", l.LoanID),
		zap.String("customer_id", l.CustomerID),
		zap.String("amount", l.Balance.StringFixed(2)))
	return toDTO(l), nil
}

// Get is limited to the owner and admins; anyone else sees not found.
func (u *Usecase) Get(ctx context.Context, caller customer.Identity, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	if !caller.IsAdmin() && l.CustomerID != caller.CustomerID {
		return nil, loan.ErrNotFound
	}
	return toDTO(l), nil
}

func (u *Usecase) ListForCustomer(ctx context.Context, customerID string) ([]loan.DashboardRow, error) {
	if customerID == "" {
		return nil, ErrForbidden
	}
	return u.repo.ListDashboard(ctx, customerID)
}

func (u *Usecase) ListAll(ctx context.Context) ([]loan.DashboardRow, error) {
	return u.repo.ListDashboard(ctx, "")
}

// UpdateStatus is the admin decision on an application.
func (u *Usecase) UpdateStatus(ctx context.Context, loanID string, status string) error {
	s := loan.Status(strings.ToLower(strings.TrimSpace(status)))
	if !s.Valid() {
		return ErrInvalidStatus
	}
	n, err := u.repo.UpdateStatus(ctx, loanID, s)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if n == 0 {
		// MySQL reports 0 for an unchanged row too; tell the two apart.
		if _, err := u.repo.GetByLoanID(ctx, loanID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loan.ErrNotFound
			}
			return err
		}
	}
	u.log.Info("loan status updated", zap.String("loan_id", loanID), zap.String("status", string(s)))
	return nil
}

func (u *Usecase) LoanTypes(ctx context.Context) ([]loantype.LoanType, error) {
	out, err := u.types.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoLoanTypes
	}
	return out, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

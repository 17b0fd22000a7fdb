package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"studentloan-backend/internal/domain/customer"
	domain "studentloan-backend/internal/domain/loan"
	"studentloan-backend/internal/domain/loantype"
	"studentloan-backend/internal/testutil/loanmock"
	"studentloan-backend/internal/testutil/loantypemock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	custID  = "cccccccccccccccccccccccccccccccc"
	otherID = "dddddddddddddddddddddddddddddddd"
)

var (
	owner = customer.Identity{UserID: "u1", CustomerID: custID, Role: customer.RoleUser}
	admin = customer.Identity{UserID: "u2", CustomerID: otherID, Role: customer.RoleAdmin}
)

func knownTypes() *loantypemock.Repo {
	return &loantypemock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*loantype.LoanType, error) {
			if id == 1 {
				return &loantype.LoanType{ID: 1, Name: "Tuition"}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func validApply() ApplyInput {
	return ApplyInput{
		CustomerID:  custID,
		LoanTypeID:  1,
		StartDate:   "2025-09-01",
		EndDate:     "2026-09-01",
		Amount:      decimal.RequireFromString("1500.50"),
		Purpose:     "tuition fees",
		TermsAgreed: true,
	}
}

func TestApply_Success(t *testing.T) {
	var created *domain.Loan
	uc := NewUsecase(&loanmock.Repo{
		CreateFn: func(_ context.Context, l *domain.Loan) error {
			created = l
			l.CreatedAt = time.Now().UTC()
			return nil
		},
	}, knownTypes(), nil)

	dto, err := uc.Apply(context.Background(), owner, validApply())
	if err != nil {
		t.Fatalf("Apply err: %v", err)
	}
	if len(dto.LoanID) != 32 {
		t.Fatalf("LoanID length: %d", len(dto.LoanID))
	}
	if dto.Status != domain.StatusPending || created.Status != domain.StatusPending {
		t.Fatalf("status=%s", dto.Status)
	}
	if dto.Amount != "1500.50" || !created.Balance.Equal(decimal.RequireFromString("1500.5")) {
		t.Fatalf("amount=%s balance=%s", dto.Amount, created.Balance)
	}
	if dto.StartDate != "2025-09-01" || dto.EndDate != "2026-09-01" {
		t.Fatalf("dates %s..%s", dto.StartDate, dto.EndDate)
	}
	if created.Purpose == nil || *created.Purpose != "tuition fees" || created.HousingStatus != nil {
		t.Fatalf("optional fields: %+v", created)
	}
}

func TestApply_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		caller customer.Identity
		mutate func(*ApplyInput)
		want   error
	}{
		{"missing customer", owner, func(in *ApplyInput) { in.CustomerID = "" }, ErrMissingFields},
		{"missing type", owner, func(in *ApplyInput) { in.LoanTypeID = 0 }, ErrMissingFields},
		{"missing dates", owner, func(in *ApplyInput) { in.EndDate = "" }, ErrMissingFields},
		{"someone else's customer id", owner, func(in *ApplyInput) { in.CustomerID = otherID }, ErrForbidden},
		{"admin cannot file for others", admin, func(*ApplyInput) {}, ErrForbidden},
		{"terms not agreed", owner, func(in *ApplyInput) { in.TermsAgreed = false }, ErrTermsNotAgreed},
		{"zero amount", owner, func(in *ApplyInput) { in.Amount = decimal.Zero }, ErrInvalidAmount},
		{"sub-cent amount", owner, func(in *ApplyInput) { in.Amount = decimal.RequireFromString("1.001") }, ErrInvalidAmount},
		{"huge exponent amount", owner, func(in *ApplyInput) { in.Amount = decimal.RequireFromString("1e10000000") }, ErrInvalidAmount},
		{"amount wider than the column", owner, func(in *ApplyInput) { in.Amount = decimal.RequireFromString("1e30") }, ErrInvalidAmount},
		{"bad date", owner, func(in *ApplyInput) { in.StartDate = "01/09/2025" }, ErrInvalidDates},
		{"end before start", owner, func(in *ApplyInput) { in.EndDate = "2025-01-01" }, ErrInvalidDates},
		{"unknown type", owner, func(in *ApplyInput) { in.LoanTypeID = 9 }, ErrUnknownLoanType},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewUsecase(&loanmock.Repo{
				CreateFn: func(context.Context, *domain.Loan) error {
					t.Fatalf("Create must not be called")
					return nil
				},
			}, knownTypes(), nil)
			in := validApply()
			tc.mutate(&in)
			if _, err := uc.Apply(context.Background(), tc.caller, in); !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGet_OwnerAdminAndStranger(t *testing.T) {
	const LID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	uc := NewUsecase(&loanmock.Repo{
		GetByLoanIDFn: func(_ context.Context, loanID string) (*domain.Loan, error) {
			if loanID != LID {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.Loan{LoanID: LID, CustomerID: custID, Balance: decimal.NewFromInt(10), Status: domain.StatusApproved}, nil
		},
	}, knownTypes(), nil)
	ctx := context.Background()

	if dto, err := uc.Get(ctx, owner, LID); err != nil || dto.LoanID != LID || dto.Amount != "10.00" {
		t.Fatalf("owner Get: %+v, %v", dto, err)
	}
	if _, err := uc.Get(ctx, admin, LID); err != nil {
		t.Fatalf("admin Get: %v", err)
	}
	stranger := customer.Identity{UserID: "u3", CustomerID: otherID, Role: customer.RoleUser}
	if _, err := uc.Get(ctx, stranger, LID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("stranger Get: want ErrNotFound, got %v", err)
	}
	if _, err := uc.Get(ctx, owner, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing Get: want ErrNotFound, got %v", err)
	}
}

func TestLists(t *testing.T) {
	var gotFilter []string
	uc := NewUsecase(&loanmock.Repo{
		ListDashboardFn: func(_ context.Context, customerID string) ([]domain.DashboardRow, error) {
			gotFilter = append(gotFilter, customerID)
			return []domain.DashboardRow{{LoanID: "x"}}, nil
		},
	}, knownTypes(), nil)
	ctx := context.Background()

	if rows, err := uc.ListForCustomer(ctx, custID); err != nil || len(rows) != 1 {
		t.Fatalf("ListForCustomer: %v %v", rows, err)
	}
	if _, err := uc.ListAll(ctx); err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if _, err := uc.ListForCustomer(ctx, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("empty customer: want ErrForbidden, got %v", err)
	}
	if len(gotFilter) != 2 || gotFilter[0] != custID || gotFilter[1] != "" {
		t.Fatalf("filters = %q", gotFilter)
	}
}

func TestUpdateStatus(t *testing.T) {
	const LID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	ctx := context.Background()

	t.Run("approves", func(t *testing.T) {
		uc := NewUsecase(&loanmock.Repo{
			UpdateStatusFn: func(_ context.Context, loanID string, s domain.Status) (int64, error) {
				if loanID != LID || s != domain.StatusApproved {
					t.Fatalf("args %s %s", loanID, s)
				}
				return 1, nil
			},
		}, knownTypes(), nil)
		if err := uc.UpdateStatus(ctx, LID, " Approved "); err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewUsecase(&loanmock.Repo{}, knownTypes(), nil)
		if err := uc.UpdateStatus(ctx, LID, "paid"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("want ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("unknown loan", func(t *testing.T) {
		uc := NewUsecase(&loanmock.Repo{
			UpdateStatusFn: func(context.Context, string, domain.Status) (int64, error) { return 0, nil },
			GetByLoanIDFn:  func(context.Context, string) (*domain.Loan, error) { return nil, gorm.ErrRecordNotFound },
		}, knownTypes(), nil)
		if err := uc.UpdateStatus(ctx, LID, "declined"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("unchanged row is not an error", func(t *testing.T) {
		uc := NewUsecase(&loanmock.Repo{
			UpdateStatusFn: func(context.Context, string, domain.Status) (int64, error) { return 0, nil },
			GetByLoanIDFn: func(context.Context, string) (*domain.Loan, error) {
				return &domain.Loan{LoanID: LID, Status: domain.StatusDeclined}, nil
			},
		}, knownTypes(), nil)
		if err := uc.UpdateStatus(ctx, LID, "declined"); err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
	})
}

func TestLoanTypes(t *testing.T) {
	ctx := context.Background()
	uc := NewUsecase(&loanmock.Repo{}, &loantypemock.Repo{
		ListFn: func(context.Context) ([]loantype.LoanType, error) { return []loantype.LoanType{}, nil },
	}, nil)
	if _, err := uc.LoanTypes(ctx); !errors.Is(err, ErrNoLoanTypes) {
		t.Fatalf("want ErrNoLoanTypes, got %v", err)
	}

	uc = NewUsecase(&loanmock.Repo{}, &loantypemock.Repo{
		ListFn: func(context.Context) ([]loantype.LoanType, error) {
			return []loantype.LoanType{{ID: 1, Name: "Tuition"}}, nil
		},
	}, nil)
	if got, err := uc.LoanTypes(ctx); err != nil || len(got) != 1 {
		t.Fatalf("LoanTypes: %v %v", got, err)
	}
}

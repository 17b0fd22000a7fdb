package loan

import (
	"time"

	"studentloan-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
)

// ApplyInput is a loan application ("reservation"). Dates are YYYY-MM-DD.
type ApplyInput struct {
	CustomerID         string          `json:"customer_id" validate:"required,hex32"`
	LoanTypeID         uint64          `json:"loan_type_id" validate:"required"`
	StartDate          string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate            string          `json:"end_date" validate:"required,datetime=2006-01-02"`
	Amount             decimal.Decimal `json:"amount"`
	Purpose            string          `json:"purpose" validate:"max=2000"`
	EmploymentStatus   string          `json:"employment_status" validate:"max=64"`
	HousingStatus      string          `json:"housing_status" validate:"max=64"`
	TermsAgreed        bool            `json:"terms_agreed"`
	OtherLoans         string          `json:"other_loans" validate:"max=2000"`
	EducationalPurpose bool            `json:"educational_purpose"`
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,loanstatus"`
}

type LoanDTO struct {
	LoanID             string      `json:"loan_id"`
	CustomerID         string      `json:"customer_id"`
	LoanTypeID         uint64      `json:"loan_type_id"`
	StartDate          string      `json:"start_date"`
	EndDate            string      `json:"end_date"`
	Amount             string      `json:"amount"`
	Status             loan.Status `json:"status"`
	Purpose            *string     `json:"purpose"`
	EmploymentStatus   *string     `json:"employment_status"`
	HousingStatus      *string     `json:"housing_status"`
	TermsAgreed        bool        `json:"terms_agreed"`
	OtherLoans         *string     `json:"other_loans"`
	EducationalPurpose bool        `json:"educational_purpose"`
	CreatedAt          time.Time   `json:"created_at"`
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:             l.LoanID,
		CustomerID:         l.CustomerID,
		LoanTypeID:         l.LoanTypeID,
		StartDate:          l.StartDate.Format(time.DateOnly),
		EndDate:            l.EndDate.Format(time.DateOnly),
		Amount:             l.Balance.StringFixed(2),
		Status:             l.Status,
		Purpose:            l.Purpose,
		EmploymentStatus:   l.EmploymentStatus,
		HousingStatus:      l.HousingStatus,
		TermsAgreed:        l.TermsAgreed,
		OtherLoans:         l.OtherLoans,
		EducationalPurpose: l.EducationalPurpose,
		CreatedAt:          l.CreatedAt,
	}
}

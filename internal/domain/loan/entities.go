package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("loan not found")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// Table: loans. Balance is the outstanding principal; a fully repaid loan
// is deleted rather than kept at zero.
type Loan struct {
	ID                 uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID             string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	CustomerID         string          `gorm:"size:32;index:idx_loans_customer" json:"customer_id"`
	LoanTypeID         uint64          `gorm:"column:loan_type_id;index" json:"loan_type_id"`
	StartDate          time.Time       `gorm:"type:date" json:"start_date"`
	EndDate            time.Time       `gorm:"type:date" json:"end_date"`
	Purpose            *string         `gorm:"type:text" json:"purpose"`
	Balance            decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"balance"`
	Status             Status          `gorm:"type:varchar(16);default:'pending';index" json:"status"`
	EmploymentStatus   *string         `gorm:"size:64" json:"employment_status"`
	HousingStatus      *string         `gorm:"size:64" json:"housing_status"`
	TermsAgreed        bool            `json:"terms_agreed"`
	OtherLoans         *string         `gorm:"type:text" json:"other_loans"`
	EducationalPurpose bool            `json:"educational_purpose"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// DashboardRow is a loan joined with its type and owning customer.
type DashboardRow struct {
	LoanID             string          `json:"loan_id"`
	CustomerID         string          `json:"customer_id"`
	LoanTypeID         uint64          `json:"loan_type_id"`
	LoanType           string          `json:"loan_type"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	Status             Status          `json:"status"`
	Balance            decimal.Decimal `json:"amount"`
	Purpose            *string         `json:"purpose"`
	CreatedAt          time.Time       `json:"created_at"`
	EmploymentStatus   *string         `json:"employment_status"`
	HousingStatus      *string         `json:"housing_status"`
	TermsAgreed        bool            `json:"terms_agreed"`
	OtherLoans         *string         `json:"other_loans"`
	EducationalPurpose bool            `json:"educational_purpose"`
	CustomerName       string          `json:"customer_name"`
	CustomerEmail      string          `json:"customer_email"`
	CustomerPhone      string          `json:"customer_phone"`
}

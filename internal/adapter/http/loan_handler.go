package http

import (
	"errors"
	"net/http"

	"studentloan-backend/internal/adapter/middleware"
	domainLoan "studentloan-backend/internal/domain/loan"
	"studentloan-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

func (h *LoanHandler) CreateReservation(c echo.Context) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	var req loan.ApplyInput
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Apply(c.Request().Context(), caller, req)
	if err != nil {
		return writeLoanError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetReservation(c echo.Context) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), caller, loanID)
	if err != nil {
		return writeLoanError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListReservations also serves the user dashboard.
func (h *LoanHandler) ListReservations(c echo.Context) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	rows, err := h.uc.ListForCustomer(c.Request().Context(), caller.CustomerID)
	if err != nil {
		return writeLoanError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *LoanHandler) LoanTypes(c echo.Context) error {
	out, err := h.uc.LoanTypes(c.Request().Context())
	if err != nil {
		return writeLoanError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func writeLoanError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loan.ErrMissingFields),
		errors.Is(err, loan.ErrTermsNotAgreed),
		errors.Is(err, loan.ErrInvalidAmount),
		errors.Is(err, loan.ErrInvalidDates),
		errors.Is(err, loan.ErrUnknownLoanType),
		errors.Is(err, loan.ErrInvalidStatus):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainLoan.ErrNotFound), errors.Is(err, loan.ErrNoLoanTypes):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

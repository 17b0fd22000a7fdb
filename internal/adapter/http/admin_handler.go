package http

import (
	"net/http"

	"studentloan-backend/internal/usecase/auth"
	"studentloan-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

// AdminHandler routes sit behind middleware.RequireAdmin.
type AdminHandler struct {
	loans *loan.Usecase
	users *auth.Usecase
}

func NewAdminHandler(loans *loan.Usecase, users *auth.Usecase) *AdminHandler {
	return &AdminHandler{loans: loans, users: users}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	rows, err := h.loans.ListAll(c.Request().Context())
	if err != nil {
		return writeLoanError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *AdminHandler) UpdateReservationStatus(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req loan.UpdateStatusInput
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	if err := h.loans.UpdateStatus(c.Request().Context(), loanID, req.Status); err != nil {
		return writeLoanError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"loan_id": loanID, "status": req.Status})
}

func (h *AdminHandler) Customers(c echo.Context) error {
	out, err := h.users.ListCustomers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

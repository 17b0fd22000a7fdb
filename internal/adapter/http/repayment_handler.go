package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"studentloan-backend/internal/adapter/middleware"
	"studentloan-backend/internal/domain/payment"
	"studentloan-backend/internal/usecase/repayment"

	"github.com/labstack/echo/v4"
)

type RepaymentHandler struct{ uc *repayment.Processor }

func NewRepaymentHandler(uc *repayment.Processor) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

// amount may arrive as a JSON number or a string; the processor parses it.
type createRepaymentReq struct {
	CustomerID string          `json:"customer_id"`
	LoanID     string          `json:"loan_id"`
	Amount     json.RawMessage `json:"amount"`
	Note       string          `json:"note"`
	Complaint  string          `json:"complaint"`
}

func (h *RepaymentHandler) CreateRepayment(c echo.Context) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}

	var req createRepaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	note := req.Note
	if note == "" {
		note = req.Complaint
	}

	res, err := h.uc.Process(c.Request().Context(), repayment.Input{
		CallerCustomerID: caller.CustomerID,
		CustomerID:       req.CustomerID,
		LoanID:           req.LoanID,
		Amount:           amountText(req.Amount),
		Note:             note,
	})
	if err != nil {
		return writeRepaymentError(c, err)
	}
	return c.JSON(http.StatusOK, res.DTO())
}

func (h *RepaymentHandler) ListRepayments(c echo.Context) error {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	out, err := h.uc.History(c.Request().Context(), caller.CustomerID)
	if err != nil {
		return writeRepaymentError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func amountText(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return s
		}
		return str
	}
	return s
}

// Map domain errors → HTTP codes
func writeRepaymentError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	msg := "failed to create repayment"
	switch {
	case errors.Is(err, payment.ErrInvalidRequest), errors.Is(err, payment.ErrInvalidAmount):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, payment.ErrUnauthorized):
		status, msg = http.StatusForbidden, err.Error()
	case errors.Is(err, payment.ErrLoanNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, payment.ErrOverpaymentRejected):
		status, msg = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, payment.ErrWriteConflict):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, payment.ErrCorruptState):
		msg = err.Error()
	}
	return c.JSON(status, ErrorResponse{Error: msg})
}

package payment

import "errors"

// Repayment failure taxonomy. Every one of these aborts the transaction.
var (
	ErrInvalidRequest      = errors.New("missing required fields")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrLoanNotFound        = errors.New("loan not found or not approved")
	ErrCorruptState        = errors.New("invalid current loan amount")
	ErrInvalidAmount       = errors.New("invalid payment amount")
	ErrOverpaymentRejected = errors.New("payment amount exceeds remaining loan balance")
	ErrWriteConflict       = errors.New("loan was modified concurrently, please retry")
)

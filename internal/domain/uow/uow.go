package uow

import (
	"context"

	"studentloan-backend/internal/domain/customer"
	"studentloan-backend/internal/domain/loan"
	"studentloan-backend/internal/domain/payment"
)

// Repos are bound to the same transaction.
type Repos struct {
	Loans     loan.Repository
	Payments  payment.Repository
	Customers customer.Repository
}

type UnitOfWork interface {
	// fn's error rolls the transaction back and is returned unchanged.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}

package uowmock

import (
	"context"
	"errors"

	"studentloan-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Use Passthrough to run the body against fixed repos; an unset WithinTxFn
// returns errUnimplemented.
type UoW struct {
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
	Calls      int
}

func New() *UoW { return &UoW{} }

// Passthrough runs every transaction body directly against repos.
func Passthrough(repos uow.Repos) *UoW {
	return New().WithWithinTx(func(_ context.Context, fn func(uow.Repos) error) error {
		return fn(repos)
	})
}

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	m.Calls++
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

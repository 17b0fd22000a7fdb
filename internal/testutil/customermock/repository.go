package customermock

import (
	"context"

	domain "studentloan-backend/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateCustomerFn  func(ctx context.Context, c *domain.Customer) error
	CreateUserFn      func(ctx context.Context, u *domain.User) error
	GetUserByEmailFn  func(ctx context.Context, email string) (*domain.User, error)
	GetUserByUserIDFn func(ctx context.Context, userID string) (*domain.User, error)
	ListUsersFn       func(ctx context.Context) ([]domain.Listing, error)
}

func (m *Repo) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	if m.CreateCustomerFn != nil {
		return m.CreateCustomerFn(ctx, c)
	}
	return nil
}

func (m *Repo) CreateUser(ctx context.Context, u *domain.User) error {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetUserByEmailFn != nil {
		return m.GetUserByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) GetUserByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetUserByUserIDFn != nil {
		return m.GetUserByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListUsers(ctx context.Context) ([]domain.Listing, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return nil, context.Canceled
}

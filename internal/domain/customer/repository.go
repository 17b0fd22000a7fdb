package customer

import "context"

type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	CreateUser(ctx context.Context, u *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByUserID(ctx context.Context, userID string) (*User, error)
	ListUsers(ctx context.Context) ([]Listing, error)
}

package mysql

import (
	"context"

	customerDomain "studentloan-backend/internal/domain/customer"

	"gorm.io/gorm"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) CreateCustomer(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) CreateUser(ctx context.Context, u *customerDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *CustomerRepository) GetUserByEmail(ctx context.Context, email string) (*customerDomain.User, error) {
	var out customerDomain.User
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) GetUserByUserID(ctx context.Context, userID string) (*customerDomain.User, error) {
	var out customerDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) ListUsers(ctx context.Context) ([]customerDomain.Listing, error) {
	out := []customerDomain.Listing{}
	err := r.db.WithContext(ctx).
		Table("users AS u").
		Select("u.user_id, u.name, u.email, u.phone, u.university, u.role, u.customer_id").
		Joins("LEFT JOIN customers c ON u.customer_id = c.customer_id").
		Order("u.id ASC").
		Scan(&out).Error
	return out, err
}

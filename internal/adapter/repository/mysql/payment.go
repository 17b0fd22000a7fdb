package mysql

import (
	"context"

	paymentDomain "studentloan-backend/internal/domain/payment"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByCustomerID(ctx context.Context, customerID string) ([]paymentDomain.Payment, error) {
	out := []paymentDomain.Payment{}
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

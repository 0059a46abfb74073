package repository

import (
	"context"

	"opsconsole/internal/domain/model"

	"gorm.io/gorm"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) DeleteByOrderID(ctx context.Context, orderID string) error {
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderPayment{}).Error
	return translateError(err)
}

func (r *PaymentGormRepository) InsertBulk(ctx context.Context, payments []model.OrderPayment) error {
	if len(payments) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Create(&payments).Error
	return translateError(err)
}

func (r *PaymentGormRepository) ListByOrderID(ctx context.Context, orderID string) ([]model.OrderPayment, error) {
	var payments []model.OrderPayment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("payment_date asc").
		Find(&payments).Error
	if err != nil {
		return nil, translateError(err)
	}
	return payments, nil
}

package repository

import (
	"context"

	"opsconsole/internal/domain/model"
)

// PaymentRepository is replace-not-diff: the schedule has no stable
// client-side identity, so every save deletes and re-inserts the set.
type PaymentRepository interface {
	DeleteByOrderID(ctx context.Context, orderID string) error
	InsertBulk(ctx context.Context, payments []model.OrderPayment) error
	ListByOrderID(ctx context.Context, orderID string) ([]model.OrderPayment, error)
}

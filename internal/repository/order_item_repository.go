package repository

import (
	"context"

	"opsconsole/internal/domain/model"
)

type OrderItemRepository interface {
	// UpsertBulk writes all items in one statement, keyed by id.
	UpsertBulk(ctx context.Context, items []model.OrderItem) error

	ListIDsByOrderID(ctx context.Context, orderID string) ([]string, error)
	DeleteByIDs(ctx context.Context, ids []string) error
	DeleteByOrderID(ctx context.Context, orderID string) error
}

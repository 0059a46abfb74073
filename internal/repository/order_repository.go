package repository

import (
	"context"

	"opsconsole/internal/domain/model"
)

type OrderRepository interface {
	// Upsert writes the header row by primary key. When o.ID is empty the
	// store assigns one and it is written back into o.
	Upsert(ctx context.Context, o *model.Order) error

	// FindAggregate loads the header with customer, contact/address refs,
	// items (with product/variant/jobs) and payments in one wide fetch.
	FindAggregate(ctx context.Context, orderID string) (model.Order, error)

	FindByID(ctx context.Context, orderID string) (model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]model.Order, error)
	Delete(ctx context.Context, orderID string) error
}

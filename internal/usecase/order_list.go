package usecase

import (
	"context"
	"net/http"
	"time"

	"opsconsole/internal/domain/model"

	"go.uber.org/zap"
)

// OrderSummary is the list-page row: header totals plus the derived
// status and the first scheduled job, enough to render the table without
// fetching the full aggregate per order.
type OrderSummary struct {
	ID            string      `json:"id"`
	OrderDate     string      `json:"orderDate"`
	CustomerID    string      `json:"customer_id"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Total         float64     `json:"total"`
	ItemCount     int         `json:"itemCount"`
	Status        OrderStatus `json:"status"`
	JobType       string      `json:"jobType"`
	JobStatus     string      `json:"jobStatus"`
	CreatedAt     time.Time   `json:"created_at"`
}

func (u *OrderUsecase) ListOrders(ctx context.Context) ([]OrderSummary, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		u.log.Error("order list failed", zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	summaries := make([]OrderSummary, len(orders))
	for i, o := range orders {
		summaries[i] = newOrderSummary(o)
	}
	return summaries, nil
}

func (u *OrderUsecase) ListOrdersByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	orders, err := u.orders.ListByCustomerID(ctx, customerID)
	if err != nil {
		u.log.Error("customer order list failed",
			zap.String("customer_id", customerID), zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return orders, nil
}

func newOrderSummary(o model.Order) OrderSummary {
	s := OrderSummary{
		ID:         o.ID,
		OrderDate:  formatDateOnly(o.OrderDate),
		CustomerID: deref(o.CustomerID),
		Total:      o.Total,
		ItemCount:  len(o.Items),
		Status:     DeriveStatus(o.Items),
		JobType:    deref(o.JobType),
		CreatedAt:  o.CreatedAt,
	}
	if o.Customer != nil {
		s.CustomerName = o.Customer.Name
		s.CustomerPhone = deref(o.Customer.Phone)
	}
	// The list page shows one job per order; take the first job of the
	// first item that has any.
	for _, item := range o.Items {
		if len(item.Jobs) == 0 {
			continue
		}
		if s.JobType == "" {
			s.JobType = item.Jobs[0].JobType
		}
		s.JobStatus = item.Jobs[0].Status
		break
	}
	return s
}

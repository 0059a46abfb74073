package usecase

import (
	"sort"
	"strings"

	"opsconsole/internal/domain/model"
)

// OrderStatus is the coarse lifecycle value shown on order lists.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusCompleted  OrderStatus = "Completed"
	StatusCancelled  OrderStatus = "Cancelled"
)

// DeriveStatus folds the items' states into one order status.
//
// Per item: an explicit legacy status field wins; otherwise the most
// recently created job decides, its label mapped through the fixed table
// below (unknown labels count as pending). The aggregate precedence is
// significant: a mix of cancelled and completed items reads Completed,
// not Processing, and one processing item promotes the whole order.
func DeriveStatus(items []model.OrderItem) OrderStatus {
	if len(items) == 0 {
		return StatusPending
	}

	statuses := make([]string, len(items))
	for i, item := range items {
		statuses[i] = itemStatus(item)
	}

	if all(statuses, "cancelled") {
		return StatusCancelled
	}
	if allOf(statuses, "completed", "cancelled") {
		return StatusCompleted
	}
	if anyOf(statuses, "processing", "completed") {
		return StatusProcessing
	}
	return StatusPending
}

func itemStatus(item model.OrderItem) string {
	if item.Status != nil && *item.Status != "" {
		return strings.ToLower(*item.Status)
	}
	if len(item.Jobs) == 0 {
		return "pending"
	}

	jobs := make([]model.Job, len(item.Jobs))
	copy(jobs, item.Jobs)
	sort.SliceStable(jobs, func(a, b int) bool {
		return jobs[a].CreatedAt.After(jobs[b].CreatedAt)
	})
	return mapJobStatus(jobs[0].Status)
}

func mapJobStatus(label string) string {
	switch label {
	case model.JobStatusCompleted, "completed":
		return "completed"
	case model.JobStatusCancelled, "cancelled":
		return "cancelled"
	case model.JobStatusProcessing, "processing":
		return "processing"
	default:
		return "pending"
	}
}

func all(values []string, want string) bool {
	for _, v := range values {
		if v != want {
			return false
		}
	}
	return true
}

func allOf(values []string, wants ...string) bool {
	for _, v := range values {
		matched := false
		for _, w := range wants {
			if v == w {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func anyOf(values []string, wants ...string) bool {
	for _, v := range values {
		for _, w := range wants {
			if v == w {
				return true
			}
		}
	}
	return false
}

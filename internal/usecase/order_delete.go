package usecase

import (
	"context"
	"errors"
	"net/http"

	repo "opsconsole/internal/repository"

	"go.uber.org/zap"
)

// DeleteOrder removes the aggregate child-first so no statement ever
// violates a foreign key: fee links and completions under the order's
// jobs, then the jobs, payments and items, then the header. Without
// cross-statement transactions an interrupted delete leaves a partially
// emptied order; re-running the delete finishes the job.
func (u *OrderUsecase) DeleteOrder(ctx context.Context, orderID string) error {
	jobIDs, err := u.jobs.ListIDsByOrderID(ctx, orderID)
	if err != nil {
		u.log.Error("job id fetch failed", zap.String("order_id", orderID), zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, msgDeleteFailed)
	}

	if len(jobIDs) > 0 {
		if err := u.links.DeleteByJobIDs(ctx, jobIDs); err != nil {
			u.log.Error("fee link delete failed", zap.String("order_id", orderID), zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, msgDeleteFailed)
		}
		if err := u.completions.DeleteByJobIDs(ctx, jobIDs); err != nil {
			u.log.Error("completion delete failed", zap.String("order_id", orderID), zap.Error(err))
			return NewHTTPError(http.StatusInternalServerError, msgDeleteFailed)
		}
	}

	steps := []struct {
		name string
		fn   func(context.Context, string) error
	}{
		{"jobs", u.jobs.DeleteByOrderID},
		{"payments", u.payments.DeleteByOrderID},
		{"items", u.items.DeleteByOrderID},
		{"order", u.orders.Delete},
	}
	for _, step := range steps {
		if err := step.fn(ctx, orderID); err != nil {
			u.log.Error("order delete failed",
				zap.String("order_id", orderID),
				zap.String("step", step.name),
				zap.Error(err),
			)
			if errors.Is(err, repo.ErrForeignKeyViolation) {
				return NewHTTPError(http.StatusConflict, msgDeleteBlocked)
			}
			return NewHTTPError(http.StatusInternalServerError, msgDeleteFailed)
		}
	}

	u.log.Info("order deleted", zap.String("order_id", orderID))
	return nil
}

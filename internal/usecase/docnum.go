package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// generateDocumentNo formats {TYPE}-{yearMonth}{sequence:05d} from the
// per-period counter. Allocation failure yields nil — the payment row is
// still written, just without a number.
func (u *OrderUsecase) generateDocumentNo(ctx context.Context, docType string, dateStr string) *string {
	when := parseWhen(dateStr)
	if when == nil {
		now := time.Now()
		when = &now
	}
	yearMonth := when.Format("200601")

	seq, err := u.docSeq.Next(ctx, docType, yearMonth)
	if err != nil {
		u.log.Error("document sequence allocation failed",
			zap.String("doc_type", docType),
			zap.String("year_month", yearMonth),
			zap.Error(err),
		)
		return nil
	}

	no := fmt.Sprintf("%s-%s%05d", docType, yearMonth, seq)
	return &no
}
